// Package oracle defines the translation oracle interface and implementations.
package oracle

import "github.com/ZaguanLabs/goident"

// Oracle is the interface for external translation backends.
// This is an alias to the main package interface for convenience.
type Oracle = goident.Oracle
