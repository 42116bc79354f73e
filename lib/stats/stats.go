/*package stats computes sentinel-aware summaries of float columns. A truth
file's float columns mix real physics values with sentinel NaNs meaning "not
computed", so a naive mean over a column is garbage; the functions here split
the two populations apart before summarizing.*/
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/hepio/truthcaf/lib/truth"
)

// Summary describes the set values of one float column.
type Summary struct {
	// Name is the column's name.
	Name string
	// NSet, NSentinel, and NBad count entries holding a real value, the
	// sentinel NaN, and any other NaN, respectively.
	NSet, NSentinel, NBad int
	// Mean, Std, Min, and Max summarize the NSet real values. They are NaN
	// when NSet is zero (Std when NSet < 2).
	Mean, Std, Min, Max float64
}

// Summarize computes the Summary of one float column, skipping sentinel and
// other NaN entries.
func Summarize(name string, xs []float32) Summary {
	s := Summary{
		Name: name,
		Mean: math.NaN(), Std: math.NaN(),
		Min: math.NaN(), Max: math.NaN(),
	}

	var set []float64
	for _, x := range xs {
		switch {
		case truth.IsSentinel(x):
			s.NSentinel++
		case x != x:
			s.NBad++
		default:
			set = append(set, float64(x))
		}
	}

	s.NSet = len(set)
	if s.NSet == 0 {
		return s
	}

	s.Mean = stat.Mean(set, nil)
	if s.NSet >= 2 {
		s.Std = stat.StdDev(set, nil)
	}

	s.Min, s.Max = set[0], set[0]
	for _, x := range set {
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
	}

	return s
}
