// Package commentary synthesizes the canned discussion and insight lines the
// mock stream feeds into a meeting. Generation is a uniform pick over fixed
// template pools with the agenda topic substituted in; the random source is
// injected so tests can pin the output.
package commentary

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/csheth/boardroom/internal/meeting"
)

var discussionPool = []string{
	"For %s, we need to consider the impact on our current sprint velocity.",
	"I suggest we break down %s into smaller, more manageable tasks.",
	"We should prioritize %s based on its potential ROI and alignment with our quarterly goals.",
	"Let's discuss any potential blockers or dependencies for %s.",
	"We might need additional resources or expertise to complete %s effectively.",
	"I propose we use the MoSCoW method to prioritize the features within %s.",
	"We should consider the technical debt implications of %s.",
	"For %s, let's ensure we have clear acceptance criteria defined.",
}

var insightPool = []string{
	"Based on the discussion around %s, there seems to be a need for more cross-team collaboration. Consider scheduling a workshop to align all stakeholders.",
	"The complexity of %s might be underestimated. It's recommended to conduct a technical spike to better understand the implementation challenges.",
	"There's a potential risk of scope creep in %s. Suggest clearly defining the MVP and creating a separate backlog for future enhancements.",
	"The team's velocity might be impacted by %s. Consider adjusting the sprint commitment or allocating additional resources to maintain productivity.",
	"%s presents an opportunity for improving our CI/CD pipeline. Recommend investigating automation possibilities to streamline the delivery process.",
	"Based on previous similar tasks, %s might benefit from pair programming to ensure knowledge sharing and code quality.",
	"The discussion around %s indicates a need for user research. Consider conducting user interviews or A/B testing to validate assumptions.",
	"To mitigate risks associated with %s, it's advisable to create a detailed implementation plan with clear milestones and checkpoints.",
}

// Generator picks commentary lines from the pools.
type Generator struct {
	rng *rand.Rand
}

// New builds a generator over the given source. A nil source falls back to a
// time-seeded one.
func New(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(src)}
}

// Discussion returns one discussion line about the topic.
func (g *Generator) Discussion(topic string) string {
	return fmt.Sprintf(discussionPool[g.rng.Intn(len(discussionPool))], topic)
}

// Insight returns one insight line about the topic.
func (g *Generator) Insight(topic string) string {
	return fmt.Sprintf(insightPool[g.rng.Intn(len(insightPool))], topic)
}

// InsightType picks one of the insight flavors uniformly.
func (g *Generator) InsightType() meeting.InsightType {
	return meeting.InsightTypes[g.rng.Intn(len(meeting.InsightTypes))]
}

// DiscussionPool exposes the expanded discussion templates for a topic, in
// pool order. Used by tests asserting membership.
func DiscussionPool(topic string) []string {
	return expand(discussionPool, topic)
}

// InsightPool exposes the expanded insight templates for a topic.
func InsightPool(topic string) []string {
	return expand(insightPool, topic)
}

func expand(pool []string, topic string) []string {
	result := make([]string, len(pool))
	for i, tmpl := range pool {
		result[i] = fmt.Sprintf(tmpl, topic)
	}
	return result
}
