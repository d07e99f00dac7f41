// Package fn holds the small function types shared by the containers in
// maybe and result, plus a few helpers to build them.
package fn
