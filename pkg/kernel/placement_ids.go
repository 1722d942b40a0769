package kernel

type OpportunityID string

func NewOpportunityID(id string) OpportunityID { return OpportunityID(id) }
func (o OpportunityID) String() string         { return string(o) }
func (o OpportunityID) IsEmpty() bool          { return string(o) == "" }

type StudentProjectID string

func NewStudentProjectID(id string) StudentProjectID { return StudentProjectID(id) }
func (p StudentProjectID) String() string            { return string(p) }
func (p StudentProjectID) IsEmpty() bool             { return string(p) == "" }

type ApplicationID string

func NewApplicationID(id string) ApplicationID { return ApplicationID(id) }
func (a ApplicationID) String() string         { return string(a) }
func (a ApplicationID) IsEmpty() bool          { return string(a) == "" }
