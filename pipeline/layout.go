package pipeline

import (
	"os"

	"github.com/vimeodl/vimeodl/filesystem"
	"github.com/vimeodl/vimeodl/where"
)

// Layout names the directories a run works in.
type Layout struct {
	Bin      string
	Scratch  string
	Finished string
}

// DefaultLayout resolves the layout under the configured workspace.
func DefaultLayout() Layout {
	return Layout{
		Bin:      where.Bin(),
		Scratch:  where.Scratch(),
		Finished: where.Finished(),
	}
}

// Prepare creates every directory and leaves scratch empty.
func (l Layout) Prepare() error {
	fs := filesystem.API()

	for _, dir := range []string{l.Bin, l.Finished, l.Scratch} {
		if err := fs.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}

	if err := fs.RemoveAll(l.Scratch); err != nil {
		return err
	}
	return fs.MkdirAll(l.Scratch, os.ModePerm)
}

// Cleanup removes scratch and everything in it.
func (l Layout) Cleanup() error {
	return filesystem.API().RemoveAll(l.Scratch)
}
