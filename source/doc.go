// SPDX-License-Identifier: MIT

// Package source opens the byte streams matrix readers consume.
//
// A Source maps a name to an io.ReadCloser. Local reads the filesystem, S3 and
// MinIO read objects from a bucket under an optional key prefix. Open wraps any
// Source with transparent decompression: gzip, zstd and lz4 frames are detected
// from their magic bytes, so "system.mtx" may hold compressed text without
// changing its extension.
package source
