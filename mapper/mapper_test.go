package mapper_test

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/trevalexandro/AutoMapper/mapper"
	"github.com/trevalexandro/AutoMapper/tracker"
	"github.com/trevalexandro/AutoMapper/views"
)

type article struct {
	ID   int
	Name string
	Tags []string
}

type articleView struct {
	ID   int
	Name string
	Tags []string
}

type owner struct {
	ID   int
	Name string
}

type ownerView struct {
	ID   int
	Name string
}

// Meta is embedded by pointer in the views below.
type Meta struct {
	Note string
}

type annotated struct {
	*Meta
	ID int
}

type metaCard struct {
	Note string
}

type concealed struct {
	*metaCard
}

type record struct {
	ID    int
	Owner owner
}

type recordView struct {
	ID    int
	Owner ownerView
}

func TestMapScalarFields(t *testing.T) {
	t.Run("shared names copy, primitive slice is aliased", func(t *testing.T) {
		src := article{ID: 1, Name: "A", Tags: []string{"x", "y"}}

		got, err := mapper.Map[articleView](src)
		require.NoError(t, err)
		require.Equal(t, articleView{ID: 1, Name: "A", Tags: []string{"x", "y"}}, got)

		src.Tags[0] = "z"
		require.Equal(t, "z", got.Tags[0], "tags must share the source backing array")
	})

	t.Run("unmatched fields are skipped on both sides", func(t *testing.T) {
		type wide struct {
			ID    int
			Extra string
		}
		type narrow struct {
			ID    int
			Other string
		}

		got, err := mapper.Map[narrow](wide{ID: 7, Extra: "ignored"})
		require.NoError(t, err)
		require.Equal(t, narrow{ID: 7}, got)
	})

	t.Run("numeric widening and named scalar types convert", func(t *testing.T) {
		type row struct {
			Budget int32
			Status tracker.GoalStatus
		}
		type rowView struct {
			Budget int64
			Status string
		}

		got, err := mapper.Map[rowView](row{Budget: 2500, Status: tracker.GoalActive})
		require.NoError(t, err)
		require.Equal(t, rowView{Budget: 2500, Status: "ACTIVE"}, got)
	})

	t.Run("narrowing numbers are rejected, not wrapped", func(t *testing.T) {
		type row struct{ N int64 }
		type rowView struct{ N int8 }

		_, err := mapper.Map[rowView](row{N: 300})
		require.ErrorIs(t, err, mapper.ErrIncompatibleTypes)
		require.ErrorContains(t, err, "field N")
	})

	t.Run("conversions past the float mantissa are rejected", func(t *testing.T) {
		type row struct{ Total int64 }
		type rowView struct{ Total float64 }

		_, err := mapper.Map[rowView](row{Total: 1})
		require.ErrorIs(t, err, mapper.ErrIncompatibleTypes)
	})

	t.Run("named scalar types narrow by their underlying width", func(t *testing.T) {
		type wideID int64
		type row struct{ ID wideID }
		type rowView struct{ ID int8 }

		_, err := mapper.Map[rowView](row{ID: 1000})
		require.ErrorIs(t, err, mapper.ErrIncompatibleTypes)
	})

	t.Run("string source into int target fails", func(t *testing.T) {
		type src struct{ Name string }
		type dst struct{ Name int }

		_, err := mapper.Map[dst](src{Name: "A"})
		require.ErrorIs(t, err, mapper.ErrIncompatibleTypes)
		require.ErrorContains(t, err, "field Name")
	})

	t.Run("integer source never becomes a code-point string", func(t *testing.T) {
		type src struct{ Count int }
		type dst struct{ Count string }

		_, err := mapper.Map[dst](src{Count: 65})
		require.ErrorIs(t, err, mapper.ErrIncompatibleTypes)
	})
}

func TestMapNested(t *testing.T) {
	t.Run("nested struct maps via one recursive call", func(t *testing.T) {
		src := record{ID: 1, Owner: owner{ID: 5, Name: "Bob"}}

		got, err := mapper.Map[recordView](src)
		require.NoError(t, err)
		require.Equal(t, recordView{ID: 1, Owner: ownerView{ID: 5, Name: "Bob"}}, got)
	})

	t.Run("pointer fields allocate on demand and keep nil as nil", func(t *testing.T) {
		due := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		type src struct{ DueAt *time.Time }
		type dst struct{ DueAt *time.Time }

		got, err := mapper.Map[dst](src{DueAt: &due})
		require.NoError(t, err)
		require.NotNil(t, got.DueAt)
		require.Equal(t, due, *got.DueAt)
		require.NotSame(t, &due, got.DueAt)

		got, err = mapper.Map[dst](src{})
		require.NoError(t, err)
		require.Nil(t, got.DueAt)
	})

	t.Run("embedded pointer on the target allocates on demand", func(t *testing.T) {
		src := struct {
			ID   int
			Note string
		}{ID: 3, Note: "draft"}

		got, err := mapper.Map[annotated](src)
		require.NoError(t, err)
		require.Equal(t, 3, got.ID)
		require.NotNil(t, got.Meta)
		require.Equal(t, "draft", got.Meta.Note)
	})

	t.Run("nil unexported embedded pointer fails instead of panicking", func(t *testing.T) {
		src := struct{ Note string }{Note: "draft"}

		_, err := mapper.Map[concealed](src)
		require.ErrorIs(t, err, mapper.ErrUnexportedEmbedded)
		require.ErrorContains(t, err, "field Note")
	})

	t.Run("preallocated unexported embedded pointer is written through", func(t *testing.T) {
		dst := concealed{metaCard: &metaCard{}}

		err := mapper.MapInto(struct{ Note string }{Note: "draft"}, &dst)
		require.NoError(t, err)
		require.Equal(t, "draft", dst.Note)
	})

	t.Run("cyclic graph is cut off by the depth limit", func(t *testing.T) {
		type ring struct {
			Name string
			Next *ring
		}
		type ringView struct {
			Name string
			Next *ringView
		}

		first := &ring{Name: "first"}
		first.Next = first

		_, err := mapper.Map[ringView](first)
		require.ErrorIs(t, err, mapper.ErrDepthExceeded)

		_, err = mapper.Map[ringView](first, mapper.WithMaxDepth(4))
		require.ErrorIs(t, err, mapper.ErrDepthExceeded)
	})
}

func TestMapCollections(t *testing.T) {
	t.Run("complex elements map one by one", func(t *testing.T) {
		src := []owner{{ID: 1, Name: "Ann"}, {ID: 2, Name: "Ben"}}

		got, err := mapper.Map[[]ownerView](src)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, ownerView{ID: 1, Name: "Ann"}, got[0])
		require.Equal(t, ownerView{ID: 2, Name: "Ben"}, got[1])
	})

	t.Run("primitive element slices of different widths convert", func(t *testing.T) {
		got, err := mapper.Map[[]int64]([]int32{1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, []int64{1, 2, 3}, got)
	})

	t.Run("nil source slice stays nil", func(t *testing.T) {
		got, err := mapper.Map[[]ownerView]([]owner(nil))
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("map values follow the same element rules", func(t *testing.T) {
		src := map[string]owner{"a": {ID: 1, Name: "Ann"}}

		got, err := mapper.Map[map[string]ownerView](src)
		require.NoError(t, err)
		require.Equal(t, map[string]ownerView{"a": {ID: 1, Name: "Ann"}}, got)
	})

	t.Run("struct source into slice target is rejected", func(t *testing.T) {
		_, err := mapper.Map[[]ownerView](owner{ID: 1})
		require.ErrorIs(t, err, mapper.ErrUnsupportedShape)
	})
}

func TestMapAbsentSource(t *testing.T) {
	t.Run("untyped nil yields the zero target", func(t *testing.T) {
		got, err := mapper.Map[recordView](nil)
		require.NoError(t, err)
		require.Zero(t, got)
	})

	t.Run("nil pointer source yields the zero target", func(t *testing.T) {
		got, err := mapper.Map[recordView]((*record)(nil))
		require.NoError(t, err)
		require.Zero(t, got)
	})
}

func TestMapWithOverride(t *testing.T) {
	t.Run("override runs once, after automatic copying", func(t *testing.T) {
		calls := 0
		src := owner{ID: 5, Name: "Bob"}

		got, err := mapper.MapWith(src, func(s any, dst *ownerView) {
			calls++
			require.Equal(t, "Bob", dst.Name, "automatic copy must precede the override")
			dst.Name = s.(owner).Name + " (retired)"
		})
		require.NoError(t, err)
		require.Equal(t, 1, calls)
		require.Equal(t, "Bob (retired)", got.Name)
	})

	t.Run("override is skipped for an absent source", func(t *testing.T) {
		calls := 0

		got, err := mapper.MapWith((*owner)(nil), func(any, *ownerView) { calls++ })
		require.NoError(t, err)
		require.Zero(t, calls)
		require.Zero(t, got)
	})
}

func TestMapInto(t *testing.T) {
	t.Run("existing target is updated in place", func(t *testing.T) {
		dst := ownerView{ID: 9, Name: "stale"}

		err := mapper.MapInto(owner{ID: 9, Name: "fresh"}, &dst)
		require.NoError(t, err)
		require.Equal(t, ownerView{ID: 9, Name: "fresh"}, dst)
	})

	t.Run("override applies to an in-place target", func(t *testing.T) {
		dst := ownerView{}

		err := mapper.MapIntoWith(owner{ID: 1, Name: "Ann"}, &dst, func(_ any, v *ownerView) {
			v.Name = v.Name + "!"
		})
		require.NoError(t, err)
		require.Equal(t, ownerView{ID: 1, Name: "Ann!"}, dst)
	})

	t.Run("non-pointer target is rejected", func(t *testing.T) {
		err := mapper.MapInto(owner{}, ownerView{})
		require.ErrorIs(t, err, mapper.ErrTargetNotPointer)

		err = mapper.MapInto(owner{}, (*ownerView)(nil))
		require.ErrorIs(t, err, mapper.ErrTargetNotPointer)
	})
}

func TestMapTrackerEntities(t *testing.T) {
	hired := time.Date(2023, time.June, 12, 9, 0, 0, 0, time.UTC)
	due := hired.AddDate(1, 0, 0)

	src := tracker.Colleague{
		ID:           42,
		FirstName:    "Dana",
		LastName:     "Reed",
		Email:        "dana.reed@example.test",
		PasswordHash: "secret",
		DepartmentID: 3,
		HiredAt:      hired,
		Department:   tracker.Department{ID: 3, Name: "Platform", CostCode: "PLT-1"},
		Goals: []tracker.Goal{
			{
				ID:     7,
				Title:  "Learn Go",
				Status: tracker.GoalActive,
				DueAt:  &due,
				Plans: []tracker.TrainingPlan{
					{
						ID:       11,
						Name:     "Backend track",
						Provider: "Internal academy",
						Budget:   150000,
						Sessions: []tracker.TrainingSession{
							{
								ID:       21,
								Topic:    "Concurrency",
								Location: "Room 4",
								StartsAt: hired.AddDate(0, 1, 0),
								Duration: 2 * time.Hour,
							},
						},
					},
				},
			},
		},
	}

	got, err := mapper.MapWith(src, func(s any, dst *views.ColleagueView) {
		c := s.(tracker.Colleague)
		dst.DisplayName = c.FirstName + " " + c.LastName
	})
	require.NoError(t, err, spew.Sdump(got))

	require.Equal(t, uint(42), got.ID)
	require.Equal(t, "Dana Reed", got.DisplayName)
	require.Equal(t, views.DepartmentView{ID: 3, Name: "Platform"}, got.Department)

	require.Len(t, got.Goals, 1)
	goal := got.Goals[0]
	require.Equal(t, "Learn Go", goal.Title)
	require.Equal(t, "ACTIVE", goal.Status)
	require.NotNil(t, goal.DueAt)
	require.Equal(t, due, *goal.DueAt)

	require.Len(t, goal.Plans, 1)
	plan := goal.Plans[0]
	require.Equal(t, "Backend track", plan.Name)
	require.Equal(t, int64(150000), plan.Budget)

	require.Len(t, plan.Sessions, 1)
	require.Equal(t, views.SessionView{
		ID:       21,
		Topic:    "Concurrency",
		Location: "Room 4",
		StartsAt: hired.AddDate(0, 1, 0),
		Duration: 2 * time.Hour,
	}, plan.Sessions[0])
}
