package evaluation

// Result holds the held-out metrics for one fitted candidate. Precision,
// recall and F1 treat one fixed label as the positive class for the whole
// run.
type Result struct {
	Candidate string  `json:"candidate"`
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// Evaluate scores predicted against actual labels. Slices must be the same
// length; positive names the class counted for precision/recall/F1.
func Evaluate(candidate string, predicted, actual []string, positive string) Result {
	var correct, tp, fp, fn int

	for i, pred := range predicted {
		truth := actual[i]
		if pred == truth {
			correct++
		}
		switch {
		case pred == positive && truth == positive:
			tp++
		case pred == positive && truth != positive:
			fp++
		case pred != positive && truth == positive:
			fn++
		}
	}

	res := Result{Candidate: candidate}
	if len(actual) > 0 {
		res.Accuracy = float64(correct) / float64(len(actual))
	}
	if tp+fp > 0 {
		res.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		res.Recall = float64(tp) / float64(tp+fn)
	}
	if res.Precision+res.Recall > 0 {
		res.F1 = 2 * res.Precision * res.Recall / (res.Precision + res.Recall)
	}
	return res
}
