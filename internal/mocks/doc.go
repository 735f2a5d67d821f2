// Package mocks provides hand-written mock implementations of the store and
// auth interfaces for handler and middleware tests.
package mocks
