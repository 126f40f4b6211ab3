// Package domain defines the key material model, the capability contracts the
// key lifecycle manager composes, and the error taxonomy shared across the app.
// It contains plain types and interfaces only.
package domain
