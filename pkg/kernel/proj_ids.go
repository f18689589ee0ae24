package kernel

type PostingID string

func NewPostingID(id string) PostingID { return PostingID(id) }
func (r PostingID) String() string     { return string(r) }
func (r PostingID) IsEmpty() bool      { return string(r) == "" }

type ViewRecordID string

func NewViewRecordID(id string) ViewRecordID { return ViewRecordID(id) }
func (r ViewRecordID) String() string        { return string(r) }
func (r ViewRecordID) IsEmpty() bool         { return string(r) == "" }

type ApplicantID string

func NewApplicantID(id string) ApplicantID { return ApplicantID(id) }
func (r ApplicantID) String() string       { return string(r) }
func (r ApplicantID) IsEmpty() bool        { return string(r) == "" }

type GoalID string

func NewGoalID(id string) GoalID { return GoalID(id) }
func (r GoalID) String() string  { return string(r) }
func (r GoalID) IsEmpty() bool   { return string(r) == "" }

type SiteSettingID string

func NewSiteSettingID(id string) SiteSettingID { return SiteSettingID(id) }
func (r SiteSettingID) String() string         { return string(r) }
func (r SiteSettingID) IsEmpty() bool          { return string(r) == "" }
