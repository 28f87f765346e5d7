//go:build !amd64

package search

func init() {
	index = IndexPortable
}
