// Package views renders the landing page with gomponents and exposes the
// pieces as templ.Component values for handler responses and DataStar
// element patches.
//
// Page copy lives in content.yaml, embedded at build time. LoadContent
// overlays a file on top of it, so a deployment can change the headline or
// the mockup messages without a rebuild.
package views
