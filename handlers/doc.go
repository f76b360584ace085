// Package handlers exposes the media page content over HTTP.
//
// All write routes answer with a bare acknowledgment ("OK" after a create,
// "OK!" after an update or delete) that the page editor checks for.
// Route ids are 1-based positions within a content kind.
package handlers
