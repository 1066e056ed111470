//go:build !debug

package debug

const buildTag = false
