// Package imageref resolves stored product image references into the URL a
// client should fetch. A reference arrives in one of four shapes: an
// absolute URL, an object-storage key like uploads/abc.jpg, a legacy local
// path like /uploads/abc.jpg, or a bare filename. The shape is classified
// once and resolution is a total function over the classified value.
package imageref

import (
	"fmt"
	"strings"
)

const (
	PlaceholderPath = "/uploads/placeholder-product.jpg"
	DefaultRegion   = "eu-north-1"
)

type Kind int

const (
	KindEmpty Kind = iota
	KindAbsolute
	KindStorageKey
	KindLegacyLocalPath
	KindBareFilename
)

// Ref is a classified image reference.
type Ref struct {
	Kind Kind
	// Key is the filename under uploads/ for storage-key, legacy-path and
	// bare-filename refs; the full URL for absolute refs; empty otherwise.
	Key string
}

// Config carries the serving options. CDN wins over Bucket; with neither
// set, references resolve to local /uploads/ paths served by the backend.
type Config struct {
	CDNBase string
	Bucket  string
	Region  string
}

func Parse(raw string) Ref {
	switch {
	case raw == "":
		return Ref{Kind: KindEmpty}
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return Ref{Kind: KindAbsolute, Key: raw}
	case strings.HasPrefix(raw, "/uploads/"):
		return Ref{Kind: KindLegacyLocalPath, Key: strings.TrimPrefix(raw, "/uploads/")}
	case strings.HasPrefix(raw, "uploads/"):
		return Ref{Kind: KindStorageKey, Key: strings.TrimPrefix(raw, "uploads/")}
	default:
		return Ref{Kind: KindBareFilename, Key: strings.TrimLeft(raw, "/")}
	}
}

// Resolve computes the client-facing URL for a classified reference. It is
// idempotent: re-resolving its own absolute output returns it unchanged.
func (r Ref) Resolve(cfg Config) string {
	switch r.Kind {
	case KindEmpty:
		return PlaceholderPath
	case KindAbsolute:
		return r.Key
	}

	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	if cfg.CDNBase != "" {
		return fmt.Sprintf("%s/uploads/%s", cfg.CDNBase, r.Key)
	}
	if cfg.Bucket != "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/uploads/%s", cfg.Bucket, region, r.Key)
	}
	return "/uploads/" + r.Key
}

// ResolveURL is the one-shot form used at response boundaries.
func ResolveURL(raw string, cfg Config) string {
	return Parse(raw).Resolve(cfg)
}
