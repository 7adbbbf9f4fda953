package search

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/internetimagery/transmute/edge"
	"github.com/internetimagery/transmute/id"
	"github.com/internetimagery/transmute/tagset"
)

func TestDriver_RetryExcludesFailure(t *testing.T) {
	store := edge.NewStore()
	failing := store.Add(1, kind1, tagset.New(), kind2, tagset.New(), f1)
	store.Add(2, kind1, tagset.New(), kind2, tagset.New(), f2)

	d := &Driver{
		Store: store,
		Resolve: func(tid id.Transformer) (Transformer, bool) {
			switch tid {
			case f1:
				return func(interface{}) (interface{}, error) {
					return nil, errors.New("f1 boom")
				}, true
			case f2:
				return func(v interface{}) (interface{}, error) {
					return "computed-by-f2", nil
				}, true
			}
			return nil, false
		},
	}

	result, err := d.Execute("input", Query{KindIn: kind1, KindOut: kind2})
	require.NoError(t, err)
	require.Equal(t, "computed-by-f2", result)
	_ = failing
}

func TestDriver_ExecutionFailureWhenAllPathsFail(t *testing.T) {
	store := edge.NewStore()
	store.Add(1, kind1, tagset.New(), kind2, tagset.New(), f1)

	d := &Driver{
		Store: store,
		Resolve: func(id.Transformer) (Transformer, bool) {
			return func(interface{}) (interface{}, error) {
				return nil, errors.New("f1: always fails")
			}, true
		},
	}

	_, err := d.Execute("input", Query{KindIn: kind1, KindOut: kind2})
	require.Error(t, err)

	var execErr *ExecutionFailureError
	require.ErrorAs(t, err, &execErr)
	require.Len(t, execErr.Reports, 1)
	require.True(t, strings.Contains(execErr.Reports[0], "always fails"))
}

func TestDriver_PlanningFailureWhenNoEdgeExists(t *testing.T) {
	store := edge.NewStore()
	d := &Driver{
		Store:   store,
		Resolve: func(id.Transformer) (Transformer, bool) { return nil, false },
	}

	_, err := d.Execute("input", Query{KindIn: kind1, KindOut: kind2})
	require.Error(t, err)

	var noPath *NoPathError
	require.ErrorAs(t, err, &noPath)
}

func TestDriver_RetryAccounting(t *testing.T) {
	store := edge.NewStore()
	store.Add(1, kind1, tagset.New(), kind2, tagset.New(), f1)
	store.Add(1, kind1, tagset.New(), kind2, tagset.New(), f2)
	store.Add(1, kind1, tagset.New(), kind2, tagset.New(), f3)

	d := &Driver{
		Store: store,
		Resolve: func(id.Transformer) (Transformer, bool) {
			return func(interface{}) (interface{}, error) {
				return nil, errors.New("always fails")
			}, true
		},
		MaxAttempts: 2,
	}

	_, err := d.Execute("input", Query{KindIn: kind1, KindOut: kind2})
	require.Error(t, err)

	var execErr *ExecutionFailureError
	require.ErrorAs(t, err, &execErr)
	require.Len(t, execErr.Reports, 2, "attempts are bounded by MaxAttempts")
}
