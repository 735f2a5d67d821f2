// Package api provides the HTTP handlers for the forum API: the token
// endpoint and the account, question, and answer resources.
//
// Every mutating handler follows the same precedence: existence (404) is
// checked before ownership (401), and ownership before field validation
// (400). The identity middleware only attaches identity; enforcement
// happens here.
package api
