// Package export writes dumps as a static site: an index page plus the
// stylesheet and script it links, laid out so the directory can be opened
// from disk or served as is.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"

	"github.com/arthur-debert/insightdump/pkg/dumper"
	"github.com/arthur-debert/insightdump/pkg/errors"
	"github.com/arthur-debert/insightdump/pkg/logging"
)

// IndexName is the page written at the root of a bundle
const IndexName = "index.html"

// FileStatus reports what happened to one bundle file
type FileStatus string

const (
	StatusPlanned FileStatus = "planned"
	StatusWritten FileStatus = "written"
	StatusSkipped FileStatus = "skipped"
)

// File is one entry of a bundle
type File struct {
	Path   string
	Size   int
	Status FileStatus
}

// Result describes a bundle once Bundle returns
type Result struct {
	Dir   string
	Files []File
}

// Options configures Bundle
type Options struct {
	// Title of the index page
	Title string
	// Force replaces files left by a previous export
	Force bool
	// DryRun plans the bundle without touching the filesystem
	DryRun bool
}

// Bundle writes docs into dir as index.html plus the dump assets. The
// directory creation and the writes run as one synthfs pipeline.
func Bundle(ctx context.Context, dir string, docs []Document, opts Options) (*Result, error) {
	logger := logging.GetLogger("export")
	defer logging.LogOperationStart(logger, "export")()

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExport, "failed to resolve %s", dir).WithDetail("dir", dir)
	}

	title := opts.Title
	if title == "" {
		title = "insightdump"
	}

	contents := []struct {
		name string
		data string
	}{
		{IndexName, Page(title, docs, "")},
		{dumper.StylesheetName, dumper.Stylesheet()},
		{dumper.ScriptName, dumper.Script()},
	}

	result := &Result{Dir: abs}
	for _, c := range contents {
		result.Files = append(result.Files, File{
			Path:   filepath.Join(abs, c.name),
			Size:   len(c.data),
			Status: StatusPlanned,
		})
	}

	if opts.DryRun {
		logger.Info().Str("dir", abs).Int("files", len(result.Files)).Msg("Dry run, nothing written")
		for i := range result.Files {
			result.Files[i].Status = StatusSkipped
		}
		return result, nil
	}

	info, err := os.Stat(abs)
	switch {
	case err == nil && !info.IsDir():
		return nil, errors.Newf(errors.ErrDirCreate, "%s exists and is not a directory", abs).WithDetail("dir", abs)
	case err != nil && !os.IsNotExist(err):
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to access %s", abs).WithDetail("dir", abs)
	}
	dirExists := err == nil

	for _, f := range result.Files {
		if _, err := os.Lstat(f.Path); err != nil {
			continue
		}
		if !opts.Force {
			return nil, errors.Newf(errors.ErrExport, "%s already exists (use force to replace it)", f.Path).
				WithDetail("path", f.Path)
		}
		logger.Debug().Str("path", f.Path).Msg("Removing previous export file")
		if err := os.Remove(f.Path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to replace %s", f.Path).WithDetail("path", f.Path)
		}
	}

	pipeline := synthfs.NewMemPipeline()
	if !dirExists {
		if err := pipeline.Add(createDir(abs)); err != nil {
			return nil, errors.Wrap(err, errors.ErrExport, "failed to plan directory creation")
		}
	}
	for _, c := range contents {
		if err := pipeline.Add(writeFile(filepath.Join(abs, c.name), []byte(c.data))); err != nil {
			return nil, errors.Wrapf(err, errors.ErrExport, "failed to plan %s", c.name)
		}
	}

	logger.Info().Str("dir", abs).Int("files", len(contents)).Msg("Writing export bundle")
	run := synthfs.NewExecutor().Run(ctx, pipeline, filesystem.NewOSFileSystem("/"))
	if err := run.GetError(); err != nil {
		logger.Error().Err(err).Str("dir", abs).Msg("Export pipeline failed")
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write bundle to %s", abs).WithDetail("dir", abs)
	}

	for i := range result.Files {
		result.Files[i].Status = StatusWritten
	}
	return result, nil
}

// rel turns an absolute path into the form the root filesystem expects
func rel(path string) string {
	r, err := filepath.Rel("/", path)
	if err != nil {
		return path
	}
	return r
}

func createDir(path string) synthfs.Operation {
	p := rel(path)
	op := operations.NewCreateDirectoryOperation(core.OperationID(fmt.Sprintf("create-dir-%s", path)), p)
	op.SetItem(&directoryItem{path: p, mode: 0755})
	return synthfs.NewOperationsPackageAdapter(op)
}

func writeFile(path string, content []byte) synthfs.Operation {
	p := rel(path)
	op := operations.NewCreateFileOperation(core.OperationID(fmt.Sprintf("write-file-%s", path)), p)
	op.SetItem(&fileItem{path: p, content: content, mode: 0644})
	return synthfs.NewOperationsPackageAdapter(op)
}

// fileItem and directoryItem carry what synthfs needs to materialize an
// operation

type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }
