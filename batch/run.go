package batch

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/abasp/atomenc"
	"github.com/katalvlaran/abasp/builder"
	"github.com/katalvlaran/abasp/config"
	"github.com/katalvlaran/abasp/core"
	"github.com/katalvlaran/abasp/defaultenc"
	"github.com/katalvlaran/abasp/errors"
	"github.com/katalvlaran/abasp/goal"
	"github.com/katalvlaran/abasp/logger"
)

const component = "batch"

// Option configures Run.
type Option func(*runner)

// WithRunID fixes the run identifier instead of a random UUID.
func WithRunID(id string) Option { return func(r *runner) { r.runID = id } }

// WithClock replaces time.Now for the manifest timestamp.
func WithClock(now func() time.Time) Option { return func(r *runner) { r.now = now } }

// Result describes a finished run.
type Result struct {
	RunID     string
	Instances []InstanceResult
}

// Files returns the number of files written into each output directory.
func (r *Result) Files() int {
	n := 0
	for _, in := range r.Instances {
		n += len(in.Goals)
	}
	return n
}

// InstanceResult is the outcome of one configuration.
type InstanceResult struct {
	Index     int
	Seed      int64
	Params    builder.Params
	Framework *core.Framework
	Goals     []goal.Goal
	Files     []string

	atomText    string
	defaultText string
}

// rows returns the metadata rows of r, one per goal.
func (r InstanceResult) rows() [][]string {
	out := make([][]string, len(r.Goals))
	for i, g := range r.Goals {
		out[i] = []string{r.Files[i], InstanceName(r.Index), g.Label(), string(g.Standpoint)}
	}
	return out
}

type runner struct {
	cfg     *config.Config
	style   defaultenc.Style
	atomOpt []atomenc.Option
	runID   string
	now     func() time.Time
}

// Run executes every configuration of cfg and writes the instance files,
// the metadata CSV and, when configured, the manifest. It stops scheduling
// configurations once ctx is done.
func Run(ctx context.Context, cfg *config.Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	style, err := defaultenc.ParseStyle(cfg.Encoding.Style)
	if err != nil {
		return nil, err
	}

	r := &runner{cfg: cfg, style: style, now: time.Now}
	if cfg.Encoding.ClosedOrder {
		r.atomOpt = append(r.atomOpt, atomenc.WithClosedOrder())
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.runID == "" {
		r.runID = uuid.New().String()
	}

	log := logger.Logger.Named(component).With(logger.FieldRunID, r.runID)
	start := time.Now()
	log.Infow("batch started",
		"configurations", len(cfg.Instances),
		logger.FieldStyle, string(style),
		"parallel", cfg.Parallel)

	results := make([]InstanceResult, len(cfg.Instances))
	limit := cfg.Parallel
	if limit < 1 {
		limit = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, inst := range cfg.Instances {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.instance(i+1, inst)
			if err != nil {
				log.Errorw("configuration failed", logger.FieldInstance, InstanceName(i+1), logger.FieldError, err)
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "batch cancelled")
	}

	// Output directories are touched only once every configuration is built.
	for _, dir := range []string{cfg.Output.AtomDir, cfg.Output.DefaultDir} {
		if err := ClearDir(dir); err != nil {
			return nil, err
		}
	}
	w := new(errgroup.Group)
	w.SetLimit(limit)
	for _, res := range results {
		w.Go(func() error { return r.write(res) })
	}
	if err := w.Wait(); err != nil {
		return nil, err
	}

	var rows [][]string
	for _, res := range results {
		rows = append(rows, res.rows()...)
	}
	if err := WriteMetadata(cfg.Output.Metadata, rows); err != nil {
		return nil, err
	}
	if cfg.Output.Manifest != "" {
		if err := WriteManifest(cfg.Output.Manifest, r.manifest(results)); err != nil {
			return nil, err
		}
	}

	res := &Result{RunID: r.runID, Instances: results}
	log.Infow("batch finished",
		logger.FieldGoals, res.Files(),
		logger.FieldFile, cfg.Output.Metadata,
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return res, nil
}

// instance builds and encodes one configuration in memory; index is 1-based.
func (r *runner) instance(index int, inst config.InstanceConfig) (InstanceResult, error) {
	name := InstanceName(index)
	rng := inst.Rand(index)
	res := InstanceResult{Index: index, Seed: inst.SeedFor(index), Params: inst.Params(index)}

	f, err := builder.Generate(res.Params, inst.BuilderOptions(rng)...)
	if err != nil {
		return res, errors.Wrapf(err, "%s", name)
	}
	res.Framework = f

	if res.atomText, err = atomenc.Encode(f, r.atomOpt...); err != nil {
		return res, errors.Wrapf(err, "%s", name)
	}
	res.defaultText, err = defaultenc.Encode(f, defaultenc.UniversalFactHeads(f), defaultenc.WithStyle(r.style))
	if err != nil {
		return res, errors.Wrapf(err, "%s", name)
	}

	res.Goals = goal.Select(f, inst.Goals, rng)
	if len(res.Goals) < inst.Goals {
		logger.Warnw("goal pool smaller than requested",
			logger.FieldInstance, name,
			"requested", inst.Goals,
			logger.FieldGoals, len(res.Goals))
	}
	res.Files = make([]string, len(res.Goals))
	for i, gl := range res.Goals {
		res.Files[i] = FileName(index, gl)
	}

	logger.Logger.Named(component).Debugw("configuration done",
		logger.FieldInstance, name,
		logger.FieldSeed, res.Seed,
		logger.FieldRules, len(f.Rules),
		logger.FieldGoals, len(res.Goals))
	return res, nil
}

// write stores one file per goal in each output directory.
func (r *runner) write(res InstanceResult) error {
	for i, gl := range res.Goals {
		file := res.Files[i]

		atomLines := append([]string{res.atomText}, atomenc.GoalLines(gl.Standpoint, gl.Head)...)
		if err := writeText(filepath.Join(r.cfg.Output.AtomDir, file), strings.Join(atomLines, "\n")); err != nil {
			return err
		}
		defaultLines := []string{res.defaultText, defaultenc.GoalConstraint(gl.Standpoint, gl.Head)}
		if err := writeText(filepath.Join(r.cfg.Output.DefaultDir, file), strings.Join(defaultLines, "\n")); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) manifest(results []InstanceResult) *Manifest {
	m := &Manifest{
		RunID:       r.runID,
		CreatedAt:   r.now().UTC(),
		Style:       string(r.style),
		ClosedOrder: r.cfg.Encoding.ClosedOrder,
	}
	for _, res := range results {
		f := res.Framework
		m.Instances = append(m.Instances, ManifestInstance{
			Name:            InstanceName(res.Index),
			Seed:            res.Seed,
			Atoms:           res.Params.Atoms,
			AssumptionRatio: res.Params.AssumptionRatio,
			Assumptions:     len(f.Assumptions),
			Standpoints:     len(f.Standpoints),
			RulesMin:        res.Params.RulesPerStandpoint.Min,
			RulesMax:        res.Params.RulesPerStandpoint.Max,
			Edges:           len(f.Order),
			Facts:           len(f.Facts),
			Rules:           len(f.Rules),
			Goals:           len(res.Goals),
		})
	}
	return m
}
