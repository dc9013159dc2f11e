package patch

import (
	"context"
	"fmt"
	"os"

	"github.com/creatiVision/krypto-accounting-sub001/pkg/errors"
	"github.com/creatiVision/krypto-accounting-sub001/pkg/fsutil"
)

// Snapshotter takes a snapshot of a file before it is overwritten.
type Snapshotter interface {
	Create(ctx context.Context, sourcePath string) (string, error)
}

// Patcher applies one of the fix strategies to a target file. Reads and
// writes are whole-file; writes go through a temp file and an atomic rename
// so an interrupted run never leaves a truncated target behind.
type Patcher struct {
	target       string
	snapshotter  Snapshotter
	replacements []Replacement
	lineRules    []LineRule
	region       RegionRule
}

// NewPatcher creates a patcher for the given target file with the built-in
// rule sets. A nil snapshotter disables pre-write backups.
func NewPatcher(target string, snapshotter Snapshotter) *Patcher {
	return &Patcher{
		target:       target,
		snapshotter:  snapshotter,
		replacements: DefaultReplacements(),
		lineRules:    DefaultLineRules(),
		region:       DefaultRegionRule(),
	}
}

// SetReplacements overrides the literal-strategy rule set.
func (p *Patcher) SetReplacements(replacements []Replacement) {
	p.replacements = replacements
}

// SetLineRules overrides the line-scan rule set.
func (p *Patcher) SetLineRules(rules []LineRule) {
	p.lineRules = rules
}

// SetRegionRule overrides the region rule.
func (p *Patcher) SetRegionRule(rule RegionRule) {
	p.region = rule
}

// Target returns the target file path.
func (p *Patcher) Target() string {
	return p.target
}

// Apply reads the target, applies the chosen strategy, and rewrites the file.
// The literal and line-scan strategies always rewrite the target, even when
// nothing matched; the region strategy leaves the file untouched when its
// pattern is not found, which is reported via Result.Written.
func (p *Patcher) Apply(ctx context.Context, strategy Strategy) (*Result, error) {
	if p.target == "" {
		return nil, errors.ErrEmptyTargetPath
	}

	data, err := os.ReadFile(p.target)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read target file %s", p.target)
	}
	text := string(data)

	result := &Result{Strategy: strategy}

	var patched string
	switch strategy {
	case StrategyLiteral:
		patched = ApplyReplacements(text, p.replacements)
	case StrategyLines:
		patched = ApplyLineRules(text, p.lineRules)
	case StrategyRegion:
		var matched bool
		patched, matched, err = ApplyRegionRule(text, p.region)
		if err != nil {
			return nil, err
		}
		if !matched {
			// The only strategy that skips the write on a no-match.
			return result, nil
		}
	default:
		return nil, fmt.Errorf("unknown patch strategy: %s", strategy)
	}

	if p.snapshotter != nil {
		backupPath, err := p.snapshotter.Create(ctx, p.target)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to back up %s", p.target)
		}
		result.BackupPath = backupPath
	}

	perm := os.FileMode(fsutil.FileModeDefault)
	if info, err := os.Stat(p.target); err == nil {
		perm = info.Mode().Perm()
	}

	if err := fsutil.WriteFileAtomic(p.target, []byte(patched), perm); err != nil {
		return nil, errors.Wrapf(err, "failed to write target file %s", p.target)
	}

	result.Written = true
	result.Changed = patched != text
	return result, nil
}
