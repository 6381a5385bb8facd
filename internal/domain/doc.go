// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/department, domain/seller).
// This root package holds sentinel errors and the validation and storage error
// types that every workflow and adapter agrees on.
package domain
