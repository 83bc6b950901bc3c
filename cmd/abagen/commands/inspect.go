package commands

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/abasp/atomenc"
	"github.com/katalvlaran/abasp/builder"
	"github.com/katalvlaran/abasp/core"
	"github.com/katalvlaran/abasp/defaultenc"
	"github.com/katalvlaran/abasp/errors"
	"github.com/katalvlaran/abasp/goal"
	"github.com/katalvlaran/abasp/hierarchy"
)

// Encodings accepted by inspect --encoding.
const (
	EncodingAtom    = "atom"
	EncodingDefault = "default"
)

// ErrUnknownEncoding indicates an --encoding value other than atom or default.
var ErrUnknownEncoding = errors.New("unknown encoding")

// InspectCmd represents the inspect command
var InspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Generate one framework and describe it",
	Long: `Generate a single framework from explicit parameters and print a summary:
atoms and contraries, the standpoint order with its closure, rules and the
goals that would be selected. With --encoding the raw encoding is printed
instead.

Examples:
  abagen inspect --atoms 8 --ratio 0.25 --standpoints 2 --seed 1
  abagen inspect --standpoints 3 --order-prob 1 --encoding default --style schema
  abagen inspect --encoding atom --closed-order > instance.lp`,
	RunE: runInspect,
}

type inspectOptions struct {
	params      builder.Params
	orderProb   float64
	seed        int64
	goals       int
	encoding    string
	style       string
	closedOrder bool
}

var inspectOpts inspectOptions

func init() {
	d := builder.DefaultParams()
	fs := InspectCmd.Flags()
	fs.IntVar(&inspectOpts.params.Atoms, "atoms", d.Atoms, "Number of base atoms")
	fs.Float64Var(&inspectOpts.params.AssumptionRatio, "ratio", d.AssumptionRatio, "Share of atoms that are assumptions")
	fs.IntVar(&inspectOpts.params.Standpoints, "standpoints", d.Standpoints, "Number of non-universal standpoints")
	fs.IntVar(&inspectOpts.params.RulesPerStandpoint.Min, "rules-min", d.RulesPerStandpoint.Min, "Minimum rules per standpoint")
	fs.IntVar(&inspectOpts.params.RulesPerStandpoint.Max, "rules-max", d.RulesPerStandpoint.Max, "Maximum rules per standpoint")
	fs.IntVar(&inspectOpts.params.MaxBodyNonAsm, "max-body-nonasm", d.MaxBodyNonAsm, "Maximum non-assumption body atoms")
	fs.IntVar(&inspectOpts.params.MaxBodyAsm, "max-body-asm", d.MaxBodyAsm, "Maximum assumption body atoms")
	fs.IntVar(&inspectOpts.params.FactsPerUniversal.Min, "facts-min", d.FactsPerUniversal.Min, "Minimum universal facts")
	fs.IntVar(&inspectOpts.params.FactsPerUniversal.Max, "facts-max", d.FactsPerUniversal.Max, "Maximum universal facts")
	fs.Float64Var(&inspectOpts.orderProb, "order-prob", builder.DefaultOrderProbability, "Probability of each optional order edge")
	fs.Int64Var(&inspectOpts.seed, "seed", 1, "Random seed")
	fs.IntVar(&inspectOpts.goals, "goals", 5, "Number of goals to select")
	fs.StringVar(&inspectOpts.encoding, "encoding", "", "Print an encoding instead of the summary: atom or default")
	fs.StringVar(&inspectOpts.style, "style", string(defaultenc.StyleFormula), "Default-logic rule style: formula or schema")
	fs.BoolVar(&inspectOpts.closedOrder, "closed-order", false, "Inherit along the transitive closure of the order")
}

func runInspect(cmd *cobra.Command, args []string) error {
	o := inspectOpts
	if o.orderProb < builder.MinProbability || o.orderProb > builder.MaxProbability {
		return errors.NewInvalidConfigError("--order-prob must be in [0,1], got %g", o.orderProb)
	}

	rng := rand.New(rand.NewSource(o.seed))
	f, err := builder.Generate(o.params, builder.WithRand(rng), builder.WithOrderProbability(o.orderProb))
	if err != nil {
		return err
	}
	goals := goal.Select(f, o.goals, rng)

	if o.encoding != "" {
		text, err := renderEncoding(f, o.encoding, o.style, o.closedOrder)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
	return printFramework(f, goals)
}

// renderEncoding returns the named encoding of f.
func renderEncoding(f *core.Framework, encoding, style string, closedOrder bool) (string, error) {
	switch encoding {
	case EncodingAtom:
		var opts []atomenc.Option
		if closedOrder {
			opts = append(opts, atomenc.WithClosedOrder())
		}
		return atomenc.Encode(f, opts...)
	case EncodingDefault:
		s, err := defaultenc.ParseStyle(style)
		if err != nil {
			return "", err
		}
		return defaultenc.Encode(f, defaultenc.UniversalFactHeads(f), defaultenc.WithStyle(s))
	default:
		return "", errors.Wrapf(ErrUnknownEncoding, "%q (supported: atom, default)", encoding)
	}
}

func printFramework(f *core.Framework, goals []goal.Goal) error {
	g, err := hierarchy.New(f)
	if err != nil {
		return err
	}
	topo, err := g.TopologicalOrder()
	if err != nil {
		return err
	}

	pterm.DefaultSection.Println("Framework")
	pterm.Printf("  %s %s\n", pterm.LightCyan("atoms:"), joinAtoms(f.Atoms))
	pterm.Printf("  %s %s\n", pterm.LightCyan("assumptions:"), joinAtoms(f.Assumptions))
	var contraries []string
	for _, a := range f.Assumptions {
		c, _ := f.ContraryOf(a)
		contraries = append(contraries, string(a)+" → "+c.Name())
	}
	pterm.Printf("  %s %s\n", pterm.LightCyan("contraries:"), strings.Join(contraries, ", "))

	pterm.DefaultSection.Println("Standpoint order")
	closure := g.Closure()
	data := pterm.TableData{{"lower", "upper", "kind"}}
	for _, e := range closure {
		kind := "implied"
		if f.HasEdge(e.Lower, e.Upper) {
			kind = "direct"
		}
		data = append(data, []string{string(e.Lower), string(e.Upper), kind})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	names := make([]string, len(topo))
	for i, s := range topo {
		names[i] = string(s)
	}
	pterm.Printf("  %s %s\n", pterm.LightCyan("most specific first:"), strings.Join(names, ", "))
	closed, err := hierarchy.IsClosed(f.Standpoints, f.Order)
	if err != nil {
		return err
	}
	pterm.Printf("  %s %t\n", pterm.LightCyan("transitively closed:"), closed)
	for _, s := range g.Nodes() {
		parents := g.Parents(s)
		if len(parents) == 0 {
			continue
		}
		ups := make([]string, len(parents))
		for i, p := range parents {
			ups[i] = string(p)
		}
		pterm.Printf("  %s inherits from %s\n", pterm.LightGreen(string(s)), strings.Join(ups, ", "))
	}

	pterm.DefaultSection.Println("Rules")
	data = pterm.TableData{{"#", "standpoint", "rule"}}
	for i, r := range f.Rules {
		data = append(data, []string{strconv.Itoa(i + 1), string(r.Standpoint), r.String()})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	if extra := len(f.ZeroBodyRules()) - len(f.Facts); extra > 0 {
		pterm.Printf("  %s %d\n", pterm.Yellow("zero-body rules beyond the declared facts:"), extra)
	}

	pterm.DefaultSection.Println("Goals")
	for _, gl := range goals {
		pterm.Printf("  %s  %s\n", pterm.LightGreen(gl.Suffix()), defaultenc.GoalConstraint(gl.Standpoint, gl.Head))
	}
	return nil
}

func joinAtoms(atoms []core.Atom) string {
	parts := make([]string, len(atoms))
	for i, a := range atoms {
		parts[i] = string(a)
	}
	return strings.Join(parts, ", ")
}
