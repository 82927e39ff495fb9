// Package action models exchange actions as an ordered value tree and turns them
// into the canonical bytes and hash that the venue signs over.
//
// Map key order is part of an action's identity. The same key/value pairs in a
// different order encode to different bytes, hash to a different digest and
// therefore produce a signature the server rejects. Map never re-sorts keys;
// callers build maps in the field order the venue documents.
//
// Usage
//
//	cancel := action.NewMap().
//		Set("type", action.String("cancel")).
//		Set("cancels", action.Array(
//			action.FromMap(action.NewMap().
//				Set("a", action.Int(0)).
//				Set("o", action.Int(123))),
//		))
//
//	digest, err := action.Hash(action.FromMap(cancel), nonce, nil, nil)
package action
