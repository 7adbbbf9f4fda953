package search

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/internetimagery/transmute/edge"
	"github.com/internetimagery/transmute/id"
	"github.com/internetimagery/transmute/tagset"
)

// randomChainGraph builds a deterministic random graph of numKinds kinds
// where, for every i, there is an edge from kind i to kind i+1 requiring
// tag(i) and producing tag(i+1) — so a path from kind 0 to kind
// numKinds-1 exists, but only by actually carrying tags forward one hop
// at a time, starting from the tag(0) seeded into HaveTags. A handful of
// extra random edges with their own random tag requirements and products
// are mixed in to give the bidirectional search tag-gated branches that
// may or may not be usable, stressing the same dependency bookkeeping the
// hand-built scenarios exercise.
func randomChainGraph(seed int64, numKinds int) (store *edge.Store, seedTags tagset.Set, allIDs []id.Transformer) {
	rng := rand.New(rand.NewSource(seed))
	store = edge.NewStore()
	nextID := id.Transformer(1)

	for i := 0; i < numKinds-1; i++ {
		cost := int64(1 + rng.Intn(5))
		tid := nextID
		nextID++
		required := tagset.New(id.Tag(i))
		produced := tagset.New(id.Tag(i + 1))
		store.Add(cost, id.Kind(i), required, id.Kind(i+1), produced, tid)
		allIDs = append(allIDs, tid)
	}

	for extra := 0; extra < numKinds; extra++ {
		from := rng.Intn(numKinds)
		to := rng.Intn(numKinds)
		if from == to {
			continue
		}
		cost := int64(1 + rng.Intn(10))
		tid := nextID
		nextID++
		required := randomTagSubset(rng, numKinds, 2)
		produced := randomTagSubset(rng, numKinds, 2)
		store.Add(cost, id.Kind(from), required, id.Kind(to), produced, tid)
		allIDs = append(allIDs, tid)
	}

	return store, tagset.New(id.Tag(0)), allIDs
}

// randomTagSubset draws up to n tags (without replacement) from the
// universe {0, ..., universeSize-1}.
func randomTagSubset(rng *rand.Rand, universeSize, n int) tagset.Set {
	if n > universeSize {
		n = universeSize
	}
	perm := rng.Perm(universeSize)
	tags := make([]id.Tag, n)
	for i := 0; i < n; i++ {
		tags[i] = id.Tag(perm[i])
	}
	return tagset.New(tags...)
}

// TestPlan_SoundnessAndDependencySatisfaction is a property test over
// randomly generated small graphs: every returned path is kind-contiguous
// end to end, and every edge's required tags are already held by the time
// the search reaches it — the dependency chain planted in
// randomChainGraph (tag(i) gates the i-th hop) means this would fail
// immediately if the searcher spliced a path through an edge whose
// requirements the earlier edges hadn't produced.
func TestPlan_SoundnessAndDependencySatisfaction(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		store, seedTags, _ := randomChainGraph(seed, 6)

		path, err := Plan(store, Query{KindIn: id.Kind(0), KindOut: id.Kind(5), HaveTags: seedTags})
		require.NoError(t, err, "seed %d: the planted chain always connects 0..5", seed)
		require.NotEmpty(t, path)

		require.Equal(t, id.Kind(0), path[0].KindIn, "seed %d", seed)
		require.Equal(t, id.Kind(5), path[len(path)-1].KindOut, "seed %d", seed)

		tags := seedTags
		for i, e := range path {
			require.True(t, e.RequiredInTags.Subset(tags), "seed %d edge %d: unmet dependency", seed, i)
			tags = tags.Difference(e.RequiredInTags).Union(e.ProducedOutTags)
			if i > 0 {
				require.Equal(t, path[i-1].KindOut, e.KindIn, "seed %d: path is not kind-contiguous", seed)
			}
		}
	}
}

func TestPlan_ExistenceSymmetry_NoPathWhenGraphDisconnected(t *testing.T) {
	store := edge.NewStore()
	store.Add(1, id.Kind(0), tagset.New(), id.Kind(1), tagset.New(), id.Transformer(1))
	// kind 2 is never reachable from kind 0.
	store.Add(1, id.Kind(3), tagset.New(), id.Kind(2), tagset.New(), id.Transformer(2))

	_, err := Plan(store, Query{KindIn: id.Kind(0), KindOut: id.Kind(2)})
	require.Error(t, err)
}
