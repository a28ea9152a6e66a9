package cmd

import (
	"flag"

	"github.com/etnz/moneytracker/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion: global flags,
// subcommands and their flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"pretty":      predict.Nothing,
		},
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predict.Something
		})
		root.Sub[c.Name()] = sub
	}
	if topics, err := docs.All(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, docs.Index))
	}
	return root
}
