package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/teller/docs"
)

// Completion returns the shell completion tree of the application, with the global flags of
// global and one sub command per Commands entry.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(global),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		sub := &complete.Command{Flags: flagPredictors(f)}
		if c.Name() == "topic" {
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(append(topics, docs.All))
			}
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

// flagPredictors predicts ledger files for the ledger path flags and leaves other values
// free. Boolean flags take no value.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		switch {
		case isBool(fl):
			flags[fl.Name] = predict.Nothing
		case fl.Name == "users" || fl.Name == "admins":
			flags[fl.Name] = predict.Files("*.bin")
		case fl.Name == "env":
			flags[fl.Name] = predict.Set{"production", "development", "local"}
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
