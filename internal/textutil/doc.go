// Package textutil provides small string helpers shared across packages.
package textutil
