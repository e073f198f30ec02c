// Package environment propagates the deployment environment (development,
// staging, production) through context.Context.
//
//	r.Use(environment.Middleware(environment.Parse(cfg.Env)))
//
//	if environment.FromContext(ctx) == environment.Production {
//		// production only behaviour
//	}
package environment
