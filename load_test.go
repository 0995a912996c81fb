package vhdlblocks

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/vhdlblocks/vhdlblocks/internal/testutil"
)

func TestCheckFilesDesignTree(t *testing.T) {
	src, err := DirTree("testdata/designs")
	testutil.NoError(t, err, "DirTree")

	results, err := CheckFiles(context.Background(), src, WithWorkers(2))
	testutil.NoError(t, err, "CheckFiles")
	testutil.Len(t, results, 4)

	want := []string{
		"testdata/designs/rtl/counter.vhd",
		"testdata/designs/rtl/mux.vhdl",
		"testdata/designs/sim/broken.vhd",
		"testdata/designs/sim/tb.vhd",
	}
	for i, r := range results {
		testutil.Equal(t, want[i], r.Path)
		if r.Path == "testdata/designs/sim/broken.vhd" {
			testutil.ErrorIs(t, r.Err, ErrPrematureEnd)
			continue
		}
		testutil.NoError(t, r.Err, "%s", r.Path)
		testutil.Greater(t, r.Blocks, 10, "%s blocks", r.Path)
		testutil.Greater(t, r.Tokens, r.Blocks, "%s tokens", r.Path)
	}
}

func TestCheckFilesNoSource(t *testing.T) {
	_, err := CheckFiles(context.Background(), nil)
	testutil.ErrorIs(t, err, ErrNoSources)
}

func TestCheckFilesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CheckFiles(ctx, MustDirTree("testdata/designs"))
	testutil.ErrorIs(t, err, context.Canceled)
}

func TestCheckFilesBinaryContent(t *testing.T) {
	fsys := fstest.MapFS{
		"ok.vhd":  {Data: []byte("library a;\n")},
		"bin.vhd": {Data: []byte("library\x00a;\n")},
	}
	results, err := CheckFiles(context.Background(), FS("mem", fsys))
	testutil.NoError(t, err)
	testutil.Len(t, results, 2)
	testutil.Equal(t, "mem:bin.vhd", results[0].Path)
	testutil.ErrorIs(t, results[0].Err, ErrBinaryContent)
	testutil.NoError(t, results[1].Err)
	testutil.Equal(t, 4, results[1].Blocks)
	testutil.Equal(t, 0, results[0].Tokens)
}

func TestCheckFilesTokenCount(t *testing.T) {
	// SOD, library, space, a, ;, line break, EOD. The reclassified
	// copies of library, a and ; replace their originals.
	fsys := fstest.MapFS{"a.vhd": {Data: []byte("library a;\n")}}
	results, err := CheckFiles(context.Background(), FS("mem", fsys))
	testutil.NoError(t, err)
	testutil.Len(t, results, 1)
	testutil.NoError(t, results[0].Err)
	testutil.Equal(t, 7, results[0].Tokens)
	testutil.Equal(t, 4, results[0].Blocks)
}

func TestCheckFilesExtensions(t *testing.T) {
	src, err := Dir("testdata/designs/rtl", WithExtensions(".txt"))
	testutil.NoError(t, err)
	results, err := CheckFiles(context.Background(), src)
	testutil.NoError(t, err)
	testutil.Len(t, results, 1)
	testutil.ErrorIs(t, results[0].Err, ErrUnexpectedToken)
}

func TestCheckFilesMissingFile(t *testing.T) {
	results, err := CheckFiles(context.Background(), Files("testdata/designs/nope.vhd"))
	testutil.NoError(t, err)
	testutil.Len(t, results, 1)
	testutil.Error(t, results[0].Err)
}

func TestLooksBinary(t *testing.T) {
	testutil.False(t, looksBinary(nil))
	testutil.False(t, looksBinary([]byte("entity e is end;")))
	testutil.True(t, looksBinary([]byte{'a', 0, 'b'}))

	late := make([]byte, binaryCheckSize+10)
	for i := range late {
		late[i] = ' '
	}
	late[binaryCheckSize+5] = 0
	testutil.False(t, looksBinary(late), "only the head is probed")
}
