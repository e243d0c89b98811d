package generation

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/barrelgen/internal/barrel"
	"git.home.luguber.info/inful/barrelgen/internal/foundation/errors"
	"git.home.luguber.info/inful/barrelgen/internal/logfields"
	"git.home.luguber.info/inful/barrelgen/internal/metrics"
)

// pass is one traversal of the target tree.
type pass struct {
	session  *Session
	policy   *barrel.Policy
	strategy Strategy
	diag     *slog.Logger
}

func (p *pass) generate(target string) Outcome {
	out := p.generateDir(target)
	p.session.opts.Recorder.IncBarrelResult(metrics.ResultLabel(out.Kind().String()))
	return out
}

func (p *pass) generateDir(target string) Outcome {
	cfg := p.session.cfg
	barrelName := barrel.ComputeBarrelName(target, cfg)

	if p.strategy == RegularSubfolders {
		files, err := p.policy.CollectFlattened(barrelName, target)
		if err != nil {
			return Failed(err)
		}
		return p.emit(target, barrelName, files)
	}

	listing, err := p.policy.Classify(barrelName, target)
	if err != nil {
		return Failed(err)
	}
	files := listing.Files

	if p.strategy == Recursive {
		for _, dir := range listing.Dirs.Values() {
			child := p.generate(barrel.JoinPath(target, dir))
			switch child.Kind() {
			case OutcomeFailed:
				p.session.logger.Error(child.Err().Error())
				p.session.opts.Recorder.IncChildFailure()
				p.diag.Warn("Skipping failed subdirectory", logfields.Path(barrel.JoinPath(target, dir)), logfields.Error(child.Err()))
			case OutcomeWritten:
				files = append(files, barrel.RelativeTo(target, barrel.ToPosixPath(child.Path())))
			}
		}
	}

	return p.emit(target, barrelName, files)
}

func (p *pass) emit(target, barrelName string, files []string) Outcome {
	if len(files) == 0 && p.session.cfg.SkipEmpty {
		p.session.logger.Log(p.session.stamp(fmt.Sprintf("Skipping %s - no exports", target)))
		return Empty()
	}
	return p.write(target, barrelName, barrel.OrderExports(files))
}

func (p *pass) write(target, barrelName string, files []string) Outcome {
	s := p.session

	prefix := ""
	if s.cfg.PrependPackageToLibExport && barrel.IsLibraryRoot(target) {
		resolved, err := barrel.ResolvePackagePrefix(target)
		if err != nil {
			return Failed(err)
		}
		prefix = resolved
	}

	s.logger.Log(s.stamp(fmt.Sprintf("Exporting %s - found %d Dart files", target, len(files))))

	barrelPath := barrel.ToOSPath(barrel.JoinPath(target, barrel.BarrelFileName(barrelName)))
	if err := s.opts.FS.WriteFile(barrelPath, []byte(barrel.RenderBarrel(prefix, files)), barrelFileMode); err != nil {
		return Failed(errors.FileSystemError("failed to write barrel file").
			WithCause(fmt.Errorf("%w: %w", barrel.ErrFileSystem, err)).
			WithContext("path", barrelPath).
			Build())
	}

	s.opts.Recorder.ObserveExportCount(len(files))
	s.logger.Log(s.stamp("Generated barrel file at " + barrelPath))
	p.diag.Debug("Barrel written", logfields.Path(barrelPath), logfields.Barrel(barrelName), logfields.Exports(len(files)))
	return Written(barrelPath)
}
