// Package syntax defines token kinds, tokens and the syntax tree node model.
//
// Invariants:
//   - Token.Text is the exact source slice starting at Token.Position.
//   - EOF tokens are zero-length.
//   - Value is Null for every token kind except Number.
//   - Every node reports its direct children in source order; statements
//     nested in a block are returned as single nodes, never flattened.
//   - Stmt and Expr are closed: only this package can add variants.
package syntax
