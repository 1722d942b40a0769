package opportunitysrv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carevo/platform/pkg/errx"
	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/placement/opportunity"
)

type fakeRepo struct {
	items map[kernel.OpportunityID]*opportunity.Opportunity
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[kernel.OpportunityID]*opportunity.Opportunity)}
}

func (r *fakeRepo) Create(_ context.Context, o *opportunity.Opportunity) error {
	copied := *o
	r.items[o.ID] = &copied
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id kernel.OpportunityID, opType kernel.OpportunityType) (*opportunity.Opportunity, error) {
	o, ok := r.items[id]
	if !ok || o.Type != opType {
		return nil, opportunity.ErrNotFound()
	}
	copied := *o
	return &copied, nil
}

func (r *fakeRepo) ListByType(_ context.Context, opType kernel.OpportunityType) ([]opportunity.Opportunity, error) {
	var out []opportunity.Opportunity
	for _, o := range r.items {
		if o.Type == opType {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListActiveByType(_ context.Context, opType kernel.OpportunityType) ([]opportunity.Opportunity, error) {
	var out []opportunity.Opportunity
	for _, o := range r.items {
		if o.Type == opType && o.Status == opportunity.StatusActive {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, o *opportunity.Opportunity) error {
	if _, ok := r.items[o.ID]; !ok {
		return opportunity.ErrNotFound()
	}
	copied := *o
	r.items[o.ID] = &copied
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id kernel.OpportunityID, opType kernel.OpportunityType) error {
	o, ok := r.items[id]
	if !ok || o.Type != opType {
		return opportunity.ErrNotFound()
	}
	delete(r.items, id)
	return nil
}

type fakeApplicationState struct {
	counts   map[kernel.OpportunityID]int
	statuses map[kernel.OpportunityID]string
}

func (f *fakeApplicationState) CountByOpportunity(_ context.Context, id kernel.OpportunityID, _ kernel.OpportunityType) (int, error) {
	return f.counts[id], nil
}

func (f *fakeApplicationState) StatusForStudent(_ context.Context, _ kernel.UserID, id kernel.OpportunityID, _ kernel.OpportunityType) (*string, error) {
	if s, ok := f.statuses[id]; ok {
		return &s, nil
	}
	return nil, nil
}

const testAdminID = kernel.UserID("admin-1")

func newTestService() (*Service, *fakeRepo, *fakeApplicationState) {
	repo := newFakeRepo()
	apps := &fakeApplicationState{
		counts:   make(map[kernel.OpportunityID]int),
		statuses: make(map[kernel.OpportunityID]string),
	}
	return NewService(repo, apps), repo, apps
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func validCreateRequest() opportunity.CreateRequest {
	return opportunity.CreateRequest{
		Title:            "Campus Network Monitor",
		Domain:           "Networking",
		StudentsRequired: intPtr(3),
		GoogleFormLink:   "https://forms.gle/abc",
	}
}

func TestCreate_Defaults(t *testing.T) {
	svc, _, _ := newTestService()

	listing, err := svc.Create(context.Background(), kernel.OpportunityTypeProject, testAdminID, validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, opportunity.StatusActive, listing.Status)
	assert.Equal(t, testAdminID, listing.CreatedBy)
	assert.Equal(t, 3, listing.StudentsRequired)
	assert.Equal(t, 0, listing.ApplicationCount)
	assert.NotNil(t, listing.Professors)
	assert.NotNil(t, listing.Students)
	assert.Empty(t, listing.Duration)
	assert.Empty(t, listing.Description)
}

func TestCreate_MissingFields(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []opportunity.CreateRequest{
		{Domain: "X", StudentsRequired: intPtr(1), GoogleFormLink: "y"},
		{Title: "X", StudentsRequired: intPtr(1), GoogleFormLink: "y"},
		{Title: "X", Domain: "Y", GoogleFormLink: "y"},
		{Title: "X", Domain: "Y", StudentsRequired: intPtr(1)},
	}
	for i, req := range cases {
		_, err := svc.Create(context.Background(), kernel.OpportunityTypeProject, testAdminID, req)
		var appErr *errx.Error
		require.ErrorAs(t, err, &appErr, i)
		assert.Equal(t, opportunity.CodeMissingFields, appErr.Code, i)
	}
}

func TestCreate_InvalidType(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), kernel.OpportunityType("internship"), testAdminID, validCreateRequest())
	var appErr *errx.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, opportunity.CodeInvalidType, appErr.Code)
}

func TestUpdate_PartialMerge(t *testing.T) {
	svc, repo, _ := newTestService()

	listing, err := svc.Create(context.Background(), kernel.OpportunityTypeResearch, testAdminID, validCreateRequest())
	require.NoError(t, err)

	err = svc.Update(context.Background(), listing.ID, kernel.OpportunityTypeResearch, opportunity.UpdateRequest{
		Title:  strPtr("Updated Title"),
		Status: strPtr("closed"),
	})
	require.NoError(t, err)

	o, err := repo.GetByID(context.Background(), listing.ID, kernel.OpportunityTypeResearch)
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", o.Title)
	assert.Equal(t, opportunity.StatusClosed, o.Status)
	// Untouched fields keep their values.
	assert.Equal(t, "Networking", o.Domain)
	assert.Equal(t, 3, o.StudentsRequired)
}

func TestUpdate_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestService()

	listing, err := svc.Create(context.Background(), kernel.OpportunityTypeProject, testAdminID, validCreateRequest())
	require.NoError(t, err)

	err = svc.Update(context.Background(), listing.ID, kernel.OpportunityTypeProject, opportunity.UpdateRequest{
		Status: strPtr("archived"),
	})
	var appErr *errx.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, opportunity.CodeInvalidStatus, appErr.Code)
}

func TestListForAdmin_ApplicationCounts(t *testing.T) {
	svc, _, apps := newTestService()

	listing, err := svc.Create(context.Background(), kernel.OpportunityTypePatent, testAdminID, validCreateRequest())
	require.NoError(t, err)
	apps.counts[listing.ID] = 5

	listings, err := svc.ListForAdmin(context.Background(), kernel.OpportunityTypePatent)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, 5, listings[0].ApplicationCount)
}

func TestListForStudent_AnnotatesApplicationState(t *testing.T) {
	svc, _, apps := newTestService()

	applied, err := svc.Create(context.Background(), kernel.OpportunityTypeProject, testAdminID, validCreateRequest())
	require.NoError(t, err)
	fresh, err := svc.Create(context.Background(), kernel.OpportunityTypeProject, testAdminID, validCreateRequest())
	require.NoError(t, err)
	apps.statuses[applied.ID] = "approved"

	listings, err := svc.ListForStudent(context.Background(), kernel.UserID("student-1"), kernel.OpportunityTypeProject)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	byID := make(map[kernel.OpportunityID]opportunity.StudentListing)
	for _, l := range listings {
		byID[l.ID] = l
	}
	require.True(t, byID[applied.ID].HasApplied)
	require.NotNil(t, byID[applied.ID].ApplicationStatus)
	assert.Equal(t, "approved", *byID[applied.ID].ApplicationStatus)
	assert.False(t, byID[fresh.ID].HasApplied)
	assert.Nil(t, byID[fresh.ID].ApplicationStatus)
}

func TestListForStudent_ExcludesClosed(t *testing.T) {
	svc, _, _ := newTestService()

	listing, err := svc.Create(context.Background(), kernel.OpportunityTypeProject, testAdminID, validCreateRequest())
	require.NoError(t, err)
	err = svc.Update(context.Background(), listing.ID, kernel.OpportunityTypeProject, opportunity.UpdateRequest{Status: strPtr("closed")})
	require.NoError(t, err)

	listings, err := svc.ListForStudent(context.Background(), kernel.UserID("student-1"), kernel.OpportunityTypeProject)
	require.NoError(t, err)
	assert.Empty(t, listings)
}
