package siteaudit_test

import (
	"testing"

	"github.com/auditkit/siteaudit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestComposite(t *testing.T) {
	t.Parallel()

	t.Run("national weights with fact check", func(t *testing.T) {
		t.Parallel()

		sc := siteaudit.ScoreComponents{
			SEO: 60, Readability: 70, Engagement: 50, AEO: 80,
			FactCheck: intPtr(90),
		}

		// 90*.30 + 80*.25 + 60*.15 + 70*.15 + 50*.15 = 74
		assert.Equal(t, 74, siteaudit.Composite(sc))
	})

	t.Run("national weights renormalize without fact check", func(t *testing.T) {
		t.Parallel()

		sc := siteaudit.ScoreComponents{
			SEO: 60, Readability: 70, Engagement: 50, AEO: 80,
		}

		// (80*.25 + 60*.15 + 70*.15 + 50*.15) / 0.70 = 67.14
		assert.Equal(t, 67, siteaudit.Composite(sc))
	})

	t.Run("local weights selected when GEO present", func(t *testing.T) {
		t.Parallel()

		sc := siteaudit.ScoreComponents{
			SEO: 60, Readability: 70, Engagement: 50, AEO: 80,
			GEO: intPtr(40),
		}

		// (80*.20 + 40*.10 + 60*.15 + 70*.15 + 50*.15) / 0.75 = 62.67
		assert.Equal(t, 63, siteaudit.Composite(sc))
	})

	t.Run("deterministic under re-evaluation", func(t *testing.T) {
		t.Parallel()

		sc := siteaudit.ScoreComponents{
			SEO: 47, Readability: 83, Engagement: 21, AEO: 66,
			GEO: intPtr(55), FactCheck: intPtr(72),
		}

		first := siteaudit.Composite(sc)
		for range 10 {
			assert.Equal(t, first, siteaudit.Composite(sc))
		}
	})

	t.Run("zero components score zero", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, siteaudit.Composite(siteaudit.ScoreComponents{}))
	})
}

func TestScoreAEO(t *testing.T) {
	t.Parallel()

	t.Run("answerable content with FAQ, statistic, and table scores 74", func(t *testing.T) {
		t.Parallel()

		text := "Solar panel payback is typically under a decade for most homes.\n\n" +
			"Installation costs fell 73% over the last decade, according to industry data. " +
			"The best systems pay for themselves well before the warranty runs out today. " +
			"A key factor in payback time remains household electricity rates overall.\n\n" +
			"| Region | Payback |\n" +
			"| --- | --- |\n" +
			"| Southwest | six years |\n\n" +
			"How long do solar panels last on a roof?\n" +
			"Do solar panels work on cloudy days at all?\n" +
			"Can solar panels power a whole house alone?\n" +
			"Does solar increase the value of a home?\n" +
			"Are solar panels worth it in colder climates?\n" +
			"What happens to solar output in winter months?\n"

		b := siteaudit.ScoreAEO(text, nil)

		assert.Equal(t, 30, b.AnswerQuality)
		assert.Equal(t, 19, b.CitationWorthiness) // statistic 10 + capped quotables 9
		assert.Equal(t, 15, b.StructuredData)     // FAQ 10 + table 5
		assert.Equal(t, 10, b.AIFormatting)       // min(6,5)*2
		assert.Equal(t, 0, b.TopicalAuthority)
		assert.Equal(t, 74, b.Total())
	})

	t.Run("empty content scores zero", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, siteaudit.ScoreAEO("", nil).Total())
	})

	t.Run("topical authority caps heading depth and internal links", func(t *testing.T) {
		t.Parallel()

		structure := &siteaudit.HTMLStructure{H2: 12, H3: 4, InternalLinks: 40}

		b := siteaudit.ScoreAEO("", structure)

		assert.Equal(t, 10, b.TopicalAuthority)
	})

	t.Run("how-to steps count once per component", func(t *testing.T) {
		t.Parallel()

		text := "1. Turn off the breaker first.\n2. Remove the panel cover.\n3. Check the wiring.\n"

		b := siteaudit.ScoreAEO(text, nil)

		assert.Equal(t, 5, b.StructuredData)
		assert.Equal(t, 5, b.AIFormatting)
	})
}

func TestScoreGEO(t *testing.T) {
	t.Parallel()

	t.Run("nil context scores zero", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, siteaudit.ScoreGEO("Austin plumbing services", nil).Total())
	})

	t.Run("rewards local signals", func(t *testing.T) {
		t.Parallel()

		lc := &siteaudit.LocalContext{
			City:         "Austin",
			State:        "Texas",
			ServiceAreas: []string{"Round Rock", "Cedar Park"},
		}
		text := "Looking for a plumber near me in Austin? We are proudly serving " +
			"Austin, Round Rock, and Cedar Park. Our local team covers the whole " +
			"Texas hill country. Call (512) 555-0199 or visit us at 410 Congress Ave " +
			"in downtown Austin. Open daily from 8 am."

		b := siteaudit.ScoreGEO(text, lc)

		assert.Equal(t, 20, b.LocationMentions) // 3 city + 1 state mentions
		assert.Equal(t, 20, b.ServiceArea)      // statement 10 + both areas 10
		assert.Equal(t, 5, b.NearMe)
		assert.Equal(t, 15, b.BusinessInfo) // phone + address + hours
		assert.Positive(t, b.LocalIntent)
		assert.Equal(t, 10, b.Neighborhoods)
		assert.LessOrEqual(t, b.Total(), 100)
	})
}

func TestScore(t *testing.T) {
	t.Parallel()

	t.Run("empty input degrades to zeros without error", func(t *testing.T) {
		t.Parallel()

		sc := siteaudit.Score(siteaudit.ScoreInput{})

		assert.Zero(t, sc.Readability)
		assert.Zero(t, sc.AEO)
		assert.Nil(t, sc.GEO)
		assert.Nil(t, sc.FactCheck)
	})

	t.Run("GEO computed only with enabled local context", func(t *testing.T) {
		t.Parallel()

		in := siteaudit.ScoreInput{Text: "Austin services near me."}

		require.Nil(t, siteaudit.Score(in).GEO)

		in.Local = &siteaudit.LocalContext{}
		require.Nil(t, siteaudit.Score(in).GEO)

		in.Local = &siteaudit.LocalContext{City: "Austin"}
		sc := siteaudit.Score(in)
		require.NotNil(t, sc.GEO)
		assert.NotNil(t, sc.GEODetail)
	})

	t.Run("fact check score clamps to range", func(t *testing.T) {
		t.Parallel()

		sc := siteaudit.Score(siteaudit.ScoreInput{FactCheck: intPtr(250)})

		require.NotNil(t, sc.FactCheck)
		assert.Equal(t, 100, *sc.FactCheck)
	})

	t.Run("sub-scores stay within bounds", func(t *testing.T) {
		t.Parallel()

		sc := siteaudit.Score(siteaudit.ScoreInput{
			Text:            "Short. Very short. Yes.",
			Title:           "A title that is neither too short nor long",
			MetaDescription: "A meta description.",
			Structure:       &siteaudit.HTMLStructure{H1: 1, H2: 3, Images: 2, ImagesWithAlt: 2, InternalLinks: 8},
		})

		for _, s := range []int{sc.SEO, sc.Readability, sc.Engagement, sc.AEO} {
			assert.GreaterOrEqual(t, s, 0)
			assert.LessOrEqual(t, s, 100)
		}
	})
}

func TestScoreReadability(t *testing.T) {
	t.Parallel()

	t.Run("simple prose reads easy", func(t *testing.T) {
		t.Parallel()

		score, _ := siteaudit.ScoreReadability("The cat sat on the mat. The dog ran to the door.")

		assert.Greater(t, score, 80)
	})

	t.Run("empty text scores zero", func(t *testing.T) {
		t.Parallel()

		score, _ := siteaudit.ScoreReadability("")

		assert.Zero(t, score)
	})

	t.Run("long paragraphs are penalized", func(t *testing.T) {
		t.Parallel()

		sentence := "The cat sat on the mat and then ran off. "
		var wall string
		for range 30 {
			wall += sentence
		}

		short, _ := siteaudit.ScoreReadability(sentence)
		long, _ := siteaudit.ScoreReadability(wall)

		assert.Less(t, long, short)
	})
}
