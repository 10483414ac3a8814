package cmd

import (
	"github.com/etnz/tokensense/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of tsense.
func Completion() *complete.Command {
	output := map[string]complete.Predictor{
		"json": predict.Nothing,
		"q":    predict.Set{"$.circulatingSupply", "$.marketCap", "$.holdingsValue", "$.personalHoldings", "$.holdingsPercentage"},
	}
	calc := map[string]complete.Predictor{
		"supply":   predict.Something,
		"burn":     predict.Something,
		"price":    predict.Something,
		"holdings": predict.Something,
		"share":    predict.Something,
	}
	replay := map[string]complete.Predictor{
		"f": predict.Files("*.jsonl"),
	}
	for name, p := range output {
		calc[name] = p
		replay[name] = p
	}

	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"calc":     {Flags: calc},
			"replay":   {Flags: replay},
			"session":  {Flags: map[string]complete.Predictor{"report": predict.Nothing}},
			"topic":    {Args: predict.Set(topics)},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			"v":        predict.Nothing,
		},
	}
}
