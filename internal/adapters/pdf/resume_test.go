package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardomurakami/murakams-home/internal/domain"
)

func sampleResume() *domain.Resume {
	return &domain.Resume{
		Name:     "Leonardo Murakami",
		Label:    "Software Engineer",
		Email:    "me@murakams.com",
		Location: "São Paulo, Brazil",
		Website:  "https://murakams.com",
		Summary:  "Engineer focused on backend systems and infrastructure.",
		Skills: []domain.SkillGroup{
			{Category: "Languages", Items: []string{"Go", "Python"}},
			{Category: "Infrastructure", Items: []string{"Kubernetes", "Terraform"}},
		},
		Work: []domain.Experience{
			{
				Company:  "Acme Corp",
				Position: "Senior Engineer",
				Start:    "2023-01",
				End:      "",
				Location: "Remote",
				Summary:  "Built and operated the payments platform.",
			},
		},
	}
}

func TestRenderer_RenderPDF(t *testing.T) {
	output, err := NewRenderer().RenderPDF(sampleResume())
	require.NoError(t, err)

	require.NotEmpty(t, output)
	assert.Equal(t, "%PDF", string(output[:4]))
}

func TestRenderer_RenderPDF_MinimalResume(t *testing.T) {
	output, err := NewRenderer().RenderPDF(&domain.Resume{Name: "Leonardo Murakami"})
	require.NoError(t, err)

	assert.Equal(t, "%PDF", string(output[:4]))
}

func TestFormatPeriod(t *testing.T) {
	assert.Equal(t, "2023-01 - Present", formatPeriod("2023-01", ""))
	assert.Equal(t, "2021-03 - 2022-12", formatPeriod("2021-03", "2022-12"))
}
