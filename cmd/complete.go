package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// statements predicts the glob argument of every command.
var statements = predict.Files("*.html")

// flagPredictors are the value predictors of flags with a known set of values.
var flagPredictors = map[string]complete.Predictor{
	"format":   predict.Set(Formats),
	"category": predict.Set{"Buy", "Sell", "Dividend"},
	"style":    predict.Set(Styles),
}

// Completion returns the shell completion tree of the hsa command line,
// built from the flags of Commands.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagsOf(flag.CommandLine),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{
			Flags: flagsOf(f),
			Args:  statements,
		}
	}
	return root
}

func flagsOf(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}
