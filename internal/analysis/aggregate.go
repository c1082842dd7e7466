package analysis

import (
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
)

var (
	// ErrEmptyGroup is returned when an aggregation has no rows to work on.
	ErrEmptyGroup = errors.New("empty group")
	// ErrMissingColumn is returned when a source column is absent from the frame.
	ErrMissingColumn = errors.New("missing column")
)

// Group is one aggregated value keyed by the printed group value.
type Group struct {
	Key   string
	Value float64
}

// Keys returns the group keys in order.
func Keys(groups []Group) []string {
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	return keys
}

// Values returns the aggregated values in order.
func Values(groups []Group) []float64 {
	values := make([]float64, len(groups))
	for i, g := range groups {
		values[i] = g.Value
	}
	return values
}

// SumBy sums value per distinct key, ordered by key.
func SumBy(df dataframe.DataFrame, key, value string) ([]Group, error) {
	return aggregate(df, key, value, dataframe.Aggregation_SUM)
}

// MeanBy averages value per distinct key, ordered by key.
func MeanBy(df dataframe.DataFrame, key, value string) ([]Group, error) {
	return aggregate(df, key, value, dataframe.Aggregation_MEAN)
}

// CountBy counts rows per distinct key, ordered by key.
func CountBy(df dataframe.DataFrame, key string) ([]Group, error) {
	return aggregate(df, key, key, dataframe.Aggregation_COUNT)
}

// ValueCounts counts rows per distinct key, most frequent first. Ties keep key order.
func ValueCounts(df dataframe.DataFrame, key string) ([]Group, error) {
	groups, err := CountBy(df, key)
	if err != nil {
		return nil, err
	}
	sortByValueDesc(groups)
	return groups, nil
}

// ValuesBy splits the value column by key.
func ValuesBy(df dataframe.DataFrame, key, value string) (map[string][]float64, error) {
	if err := requireColumns(df, key, value); err != nil {
		return nil, err
	}
	if df.Nrow() == 0 {
		return nil, errors.Wrapf(ErrEmptyGroup, "%s by %s", value, key)
	}
	gps := df.GroupBy(key)
	if gps.Err != nil {
		return nil, errors.Wrapf(gps.Err, "group %s", key)
	}
	out := make(map[string][]float64)
	for k, g := range gps.GetGroups() {
		out[k] = g.Col(value).Float()
	}
	return out, nil
}

// Reorder arranges groups to follow order. Every key in order must be present,
// since a declared level without rows would aggregate over nothing.
func Reorder(groups []Group, order []string) ([]Group, error) {
	byKey := make(map[string]Group, len(groups))
	for _, g := range groups {
		byKey[g.Key] = g
	}
	out := make([]Group, 0, len(order))
	for _, k := range order {
		g, ok := byKey[k]
		if !ok {
			return nil, errors.Wrapf(ErrEmptyGroup, "no rows for %q", k)
		}
		out = append(out, g)
	}
	return out, nil
}

func aggregate(df dataframe.DataFrame, key, value string, typ dataframe.AggregationType) ([]Group, error) {
	if err := requireColumns(df, key, value); err != nil {
		return nil, err
	}
	if df.Nrow() == 0 {
		return nil, errors.Wrapf(ErrEmptyGroup, "%s of %s by %s", typ, value, key)
	}

	gps := df.GroupBy(key)
	if gps.Err != nil {
		return nil, errors.Wrapf(gps.Err, "group %s", key)
	}
	agg := gps.Aggregation([]dataframe.AggregationType{typ}, []string{value})
	if agg.Err != nil {
		return nil, errors.Wrapf(agg.Err, "%s of %s by %s", typ, value, key)
	}
	// Groups come back in map order.
	agg = agg.Arrange(dataframe.Sort(key))
	if agg.Err != nil {
		return nil, errors.Wrapf(agg.Err, "sort by %s", key)
	}

	keys := agg.Col(key).Records()
	values := agg.Col(value + "_" + typ.String()).Float()
	groups := make([]Group, len(keys))
	for i := range keys {
		groups[i] = Group{Key: keys[i], Value: values[i]}
	}
	return groups, nil
}

func requireColumns(df dataframe.DataFrame, names ...string) error {
	if df.Err != nil {
		return errors.Wrap(df.Err, "dataframe")
	}
	have := make(map[string]bool, df.Ncol())
	for _, n := range df.Names() {
		have[n] = true
	}
	for _, n := range names {
		if !have[n] {
			return errors.Wrapf(ErrMissingColumn, "%q", n)
		}
	}
	return nil
}

func sortByValueDesc(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Value > groups[j].Value
	})
}
