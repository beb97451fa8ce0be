// Package dot reads the Dot file interchange format used as this module's
// canonical on-disk graph representation. Writing Dot, and any
// richer Dot syntax beyond directed edge statements with an optional label
// attribute, is out of scope: Dot round-tripping is an external collaborator
// concern, not part of the CFPQ/RPQ core.
package dot
