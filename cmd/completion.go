package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/dadosbr/dadosbr"
	"github.com/dadosbr/dadosbr/docs"
)

func institutions() predict.Set {
	var names predict.Set
	for _, inst := range dadosbr.Institutions {
		names = append(names, inst.String())
	}
	return names
}

func measurementTypes() predict.Set {
	var names predict.Set
	for _, m := range dadosbr.MeasurementTypes {
		names = append(names, m.String())
	}
	return names
}

func topics() predict.Set {
	names, _ := docs.List()
	return append(predict.Set{"*"}, names...)
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ana-url": predict.Something,
			"fanout":  predict.Something,
			"cache":   predict.Nothing,
			"debug":   predict.Nothing,
			"timeout": predict.Something,
			"plain":   predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"hosts":    {Args: institutions()},
			"products": {Args: institutions()},
			"stations": {
				Flags: map[string]complete.Predictor{
					"type":  measurementTypes(),
					"state": predict.Something,
					"city":  predict.Something,
				},
			},
			"collect": {
				Flags: map[string]complete.Predictor{
					"o": predict.Files("*"),
					"n": predict.Something,
				},
				Args: institutions(),
			},
			"topic": {Args: topics()},
			"help":  {},
			"flags": {},
		},
	}
}

// Complete answers shell completion requests and exits when the process was invoked by
// the shell for that purpose. It returns otherwise. Run "COMP_INSTALL=1 dados" to install
// the completion.
func Complete(name string) {
	completion().Complete(name)
}
