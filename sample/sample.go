// Package sample loads the casino and restaurant data used by the
// demo. The data is kept as YAML, embedded in the binary, and can be
// swapped for another file with LoadCasino and LoadMenus.
//
// A document is one tree. Containers are written as
//
//	section: SLOT GAMES     # or "menu:" in a menu file
//	description: ...
//	children: [...]
//
// and leaves as a "game:" or "item:" entry with their attributes.
// Decimal values are quoted so they are read exactly.
package sample

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"go.lepak.sg/patterns/must"
)

//go:embed data/*.yaml
var data embed.FS

// ErrBadData is returned when a document decodes but does not
// describe a valid tree.
var ErrBadData = errors.New("bad sample data")

func decode(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", ErrBadData)
		}
		return err
	}

	return nil
}

// open returns an embedded file. The names are fixed, so a failure
// here is a build problem.
func open(name string) io.ReadCloser {
	return must.Get(data.Open("data/" + name))
}

func loadEmbedded[T any](ctx context.Context, name string, load func(context.Context, io.Reader) (T, error)) T {
	f := open(name)
	defer f.Close()

	zerolog.Ctx(ctx).Debug().Str("file", name).Msg("loading embedded sample data")
	return must.Get(load(ctx, f))
}
