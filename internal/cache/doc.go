// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a small generic cache with a soft size limit.
//
// It backs the decoded-texture cache of package asset: decoding and
// downscaling a gem image is the most expensive step of loading, and several
// loaders or renderers commonly resolve the same path.
//
//	c := cache.New[string, *asset.Texture](8)
//	tex := c.GetOrCreate(key, func() *asset.Texture { return decode() })
//
// # Eviction
//
// When a Set pushes the cache past its limit, the least recently accessed
// quarter of the entries is dropped. A limit of 0 disables eviction.
//
// # Thread Safety
//
// Cache is safe for concurrent use.
package cache
