// Package testsupport holds fixtures shared by tests: temp-dir backed
// configs, sniffable image bytes and an opened lookup cache.
package testsupport
