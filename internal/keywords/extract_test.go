package keywords

import (
	"fmt"
	"testing"

	"github.com/prkumar-ishir/candidate-profiling/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findInsight(t *testing.T, insights []types.KeywordInsight, key string) types.KeywordInsight {
	t.Helper()
	for _, insight := range insights {
		if insight.Key == key {
			return insight
		}
	}
	t.Fatalf("keyword %q not found in %d insights", key, len(insights))
	return types.KeywordInsight{}
}

func TestExtract_EmptyInput(t *testing.T) {
	assert.Empty(t, Extract("", 0))
	assert.Empty(t, Extract("   \n  \t ", 0))
}

func TestExtract_SectionScenario(t *testing.T) {
	jd := "Requirements: Must have React experience. Responsibilities: Lead agile ceremonies. Preferred: AWS certification."
	insights := Extract(jd, 0)
	require.NotEmpty(t, insights)

	react := findInsight(t, insights, "react")
	assert.Equal(t, types.TierCore, react.Tier)

	agile := findInsight(t, insights, "agile")
	assert.Equal(t, types.TierResponsibility, agile.Tier)

	aws := findInsight(t, insights, "aws")
	assert.Equal(t, types.TierPreferred, aws.Tier)
}

func TestExtract_Idempotent(t *testing.T) {
	jd := "Requirements\nGo and Kubernetes\nTerraform for infrastructure\nNice to have\nAWS or GCP"
	first := Extract(jd, 0)
	second := Extract(jd, 0)
	assert.Equal(t, first, second)
}

func TestExtract_ImportanceBounds(t *testing.T) {
	jd := "Requirements\nGo services at scale\nPostgreSQL and Redis\nKafka streaming pipelines\nResponsibilities\nOperate Kubernetes clusters\nNice to have\nTerraform and AWS"
	insights := Extract(jd, 0)
	require.NotEmpty(t, insights)

	for _, insight := range insights {
		assert.GreaterOrEqual(t, insight.Importance, 0.0)
		assert.LessOrEqual(t, insight.Importance, 1.0)
		assert.GreaterOrEqual(t, insight.Coverage, 0.0)
		assert.LessOrEqual(t, insight.Coverage, 1.0)
	}

	// Output is sorted by importance, so the head is the global max.
	for i := 1; i < len(insights); i++ {
		assert.GreaterOrEqual(t, insights[i-1].Importance, insights[i].Importance)
	}
}

func TestExtract_MaxImportanceSurvivesFiltering(t *testing.T) {
	// Enough distinct terms to engage both refinement filters.
	jd := "Requirements\n"
	jd += "Go Go Go Go microservices\n"
	for i := 0; i < 20; i++ {
		jd += fmt.Sprintf("tooling%d experience\n", i)
	}
	insights := Extract(jd, 0)
	require.NotEmpty(t, insights)

	maxImportance := insights[0].Importance
	found := false
	for _, insight := range insights {
		if insight.Importance == maxImportance {
			found = true
		}
	}
	assert.True(t, found, "the highest-importance keyword must survive refinement")
}

func TestExtract_SynonymsFoldIntoOneKeyword(t *testing.T) {
	jd := "Requirements\nReact.js frontend work\nDeep ReactJS knowledge\nReact Native is a bonus"
	insights := Extract(jd, 0)

	react := findInsight(t, insights, "react")
	assert.GreaterOrEqual(t, react.Occurrences, 3)
	assert.Contains(t, react.Variants, "react js")
	for _, insight := range insights {
		assert.NotEqual(t, "reactjs", insight.Key, "variants must not appear as separate keywords")
	}
}

func TestExtract_PhraseSourceClassification(t *testing.T) {
	jd := "Requirements\ndistributed systems design\ndistributed systems at scale"
	insights := Extract(jd, 0)

	phrase := findInsight(t, insights, "distributed systems")
	assert.Equal(t, types.SourcePhrase, phrase.Source)

	unigram := findInsight(t, insights, "design")
	assert.Equal(t, types.SourceTerm, unigram.Source)
}

func TestExtract_GenericTermsDropped(t *testing.T) {
	jd := "Requirements\nStrong experience and excellent skills\nGo knowledge"
	insights := Extract(jd, 0)

	for _, insight := range insights {
		assert.NotEqual(t, "experience", insight.Key)
		assert.NotEqual(t, "skills", insight.Key)
		assert.NotEqual(t, "strong", insight.Key)
	}
	findInsight(t, insights, "go")
}

func TestExtract_LimitIsRespected(t *testing.T) {
	jd := "Requirements\n"
	for i := 0; i < 60; i++ {
		jd += fmt.Sprintf("framework%d usage\n", i)
	}
	insights := Extract(jd, 7)
	assert.LessOrEqual(t, len(insights), 7)

	wide := Extract(jd, 0)
	assert.LessOrEqual(t, len(wide), DefaultLimit)
}

func TestExtract_LabelUsesMostFrequentSurface(t *testing.T) {
	jd := "Requirements\nKubernetes operations\nKubernetes upgrades\nkubernetes tooling"
	insights := Extract(jd, 0)
	k8s := findInsight(t, insights, "kubernetes")
	assert.Equal(t, "Kubernetes", k8s.Label)
}

func TestValidPhrase_EdgeFillerRejected(t *testing.T) {
	assert.False(t, ValidPhrase(Tokenize("with kubernetes")))
	assert.False(t, ValidPhrase(Tokenize("kubernetes experience")))
	assert.True(t, ValidPhrase(Tokenize("kubernetes operators")))
}

func TestValidPhrase_AllStopWordsRejected(t *testing.T) {
	assert.False(t, ValidPhrase(Tokenize("this that")))
}

func TestValidPhrase_ConnectorInsideIsFine(t *testing.T) {
	assert.True(t, ValidPhrase(Tokenize("event driven architecture")))
	assert.True(t, ValidPhrase(Tokenize("infrastructure as code")))
	assert.False(t, ValidPhrase(Tokenize("plenty of the")))
}
