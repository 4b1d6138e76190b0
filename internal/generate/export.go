package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/inful/mdfp"

	naverrors "git.home.luguber.info/inful/navbuilder/internal/errors"
	"git.home.luguber.info/inful/navbuilder/internal/export"
	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/navtree"
	"git.home.luguber.info/inful/navbuilder/internal/observability"
)

func (g *Generator) export(ctx context.Context, result *Result, sidebars *navtree.Sidebars, labeler export.Labeler) error {
	dir := g.cfg.Output.Directory
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return naverrors.FileSystem("create output directory", dir, err)
	}

	for _, f := range g.cfg.Output.Formats {
		format := string(f)
		if err := ctx.Err(); err != nil {
			return naverrors.Canceled(err)
		}
		data, err := export.Render(format, sidebars, labeler)
		if err != nil {
			return naverrors.ExportFailed(format, err)
		}
		name, err := export.FileName(format)
		if err != nil {
			return naverrors.ExportFailed(format, err)
		}

		file, err := writeIfChanged(filepath.Join(dir, name), data)
		if err != nil {
			return naverrors.FileSystem("write export", filepath.Join(dir, name), err)
		}
		file.Format = format
		result.Files = append(result.Files, file)

		if file.Written {
			g.recorder.IncFilesWritten(format)
			observability.InfoContext(ctx, "Wrote navigation export",
				logfields.Format(format), logfields.File(file.Path))
		} else {
			g.recorder.IncFilesSkipped(format)
			observability.DebugContext(ctx, "Navigation export unchanged",
				logfields.Format(format), logfields.File(file.Path))
		}
	}
	return nil
}

// fingerprint hashes export content the same way documents are fingerprinted,
// with the whole file treated as body.
func fingerprint(data []byte) string {
	return mdfp.CalculateFingerprintFromParts("", string(data))
}

// writeIfChanged writes data to path unless the current file has the same
// fingerprint. The write goes through a temporary file and a rename so a
// watcher never observes a partial export.
func writeIfChanged(path string, data []byte) (File, error) {
	fp := fingerprint(data)
	out := File{Path: path, Fingerprint: fp}

	if existing, err := os.ReadFile(path); err == nil && fingerprint(existing) == fp {
		return out, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return out, err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return out, fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return out, err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return out, err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return out, err
	}
	out.Written = true
	return out, nil
}
