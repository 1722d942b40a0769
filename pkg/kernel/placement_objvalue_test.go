package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail_Normalize(t *testing.T) {
	assert.Equal(t, Email("jane@example.com"), Email("  Jane@Example.COM ").Normalize())
	assert.Equal(t, Email(""), Email("   ").Normalize())
}

func TestEmail_IsValid(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.doe+tag@sub.example.co.in",
		"j_d%x-1@example.io",
	}
	for _, s := range valid {
		assert.True(t, Email(s).IsValid(), s)
	}

	invalid := []string{
		"",
		"jane",
		"jane@",
		"@example.com",
		"jane@example",
		"jane @example.com",
	}
	for _, s := range invalid {
		assert.False(t, Email(s).IsValid(), s)
	}
}

func TestUserType(t *testing.T) {
	assert.True(t, UserTypeStudent.IsValid())
	assert.True(t, UserTypeAdmin.IsValid())
	assert.True(t, UserTypePlacementCell.IsValid())
	assert.False(t, UserType("faculty").IsValid())
	assert.False(t, UserType("").IsValid())

	assert.True(t, UserTypeStudent.OnboardingRequired())
	assert.False(t, UserTypeAdmin.OnboardingRequired())
	assert.False(t, UserTypePlacementCell.OnboardingRequired())
}

func TestDriveLink_IsValid(t *testing.T) {
	assert.True(t, DriveLink("https://drive.google.com/file/d/abc123/view").IsValid())
	assert.True(t, DriveLink("https://docs.google.com/document/d/abc123/edit").IsValid())

	assert.False(t, DriveLink("").IsValid())
	assert.False(t, DriveLink("https://dropbox.com/s/abc123").IsValid())
	assert.False(t, DriveLink("http://drive.google.com/file/d/abc123").IsValid())
	assert.False(t, DriveLink("drive.google.com/file/d/abc123").IsValid())
}

func TestDriveLink_DirectDownloadURL(t *testing.T) {
	l := DriveLink("https://drive.google.com/file/d/1AbC_dEf/view?usp=sharing")
	assert.Equal(t, "https://drive.google.com/uc?export=download&id=1AbC_dEf", l.DirectDownloadURL())

	// Docs links and folder links are left alone.
	docs := "https://docs.google.com/document/d/xyz/edit"
	assert.Equal(t, docs, DriveLink(docs).DirectDownloadURL())
	folder := "https://drive.google.com/drive/folders/xyz"
	assert.Equal(t, folder, DriveLink(folder).DirectDownloadURL())
}

func TestOpportunityType_IsValid(t *testing.T) {
	assert.True(t, OpportunityTypeProject.IsValid())
	assert.True(t, OpportunityTypeResearch.IsValid())
	assert.True(t, OpportunityTypePatent.IsValid())
	assert.False(t, OpportunityType("internship").IsValid())
	assert.False(t, OpportunityType("").IsValid())
}
