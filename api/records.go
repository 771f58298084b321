package api

// DeviceRecord is the raw device as returned by the device routes.
// Apps is only populated when the device was requested with its app list.
type DeviceRecord struct {
	UDID              string        `json:"UDID"`
	LocationID        int           `json:"locationId"`
	SerialNumber      string        `json:"serialNumber"`
	Name              string        `json:"name"`
	Class             string        `json:"class"`
	Model             DeviceModel   `json:"model"`
	OS                DeviceOS      `json:"os"`
	Owner             DeviceOwner   `json:"owner"`
	IsManaged         bool          `json:"isManaged"`
	IsSupervised      bool          `json:"isSupervised"`
	BatteryLevel      float64       `json:"batteryLevel"`
	TotalCapacity     float64       `json:"totalCapacity"`
	AvailableCapacity float64       `json:"availableCapacity"`
	InTrash           bool          `json:"inTrash"`
	EnrollType        string        `json:"enrollType"`
	Groups            []string      `json:"groups"`
	AssetTag          *string       `json:"assetTag"`
	Notes             *string       `json:"notes"`
	LastCheckin       *string       `json:"lastCheckin"`
	Modified          *string       `json:"modified"`
	Region            *DeviceRegion `json:"region"`
	Apps              []DeviceApp   `json:"apps"`
}

type DeviceModel struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Type       string `json:"type"`
}

type DeviceOS struct {
	Prefix  string `json:"prefix"`
	Version string `json:"version"`
}

// DeviceOwner is the owner summary embedded in a device. ID 0 means unowned.
type DeviceOwner struct {
	ID         int     `json:"id"`
	LocationID int     `json:"locationId"`
	InTrash    bool    `json:"inTrash"`
	Name       string  `json:"name"`
	Username   *string `json:"username"`
	Email      *string `json:"email"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
}

// DeviceRegion holds the region name and its "lat,long" coordinate string.
type DeviceRegion struct {
	Name        string `json:"string"`
	Coordinates string `json:"coordinates"`
}

// DeviceApp is one installed app as listed on a device. Identifier is the
// app's bundle id.
type DeviceApp struct {
	Name       string  `json:"name"`
	Identifier string  `json:"identifier"`
	Version    string  `json:"version"`
	Vendor     *string `json:"vendor"`
	Icon       *string `json:"icon"`
}

type UserRecord struct {
	ID            int      `json:"id"`
	LocationID    int      `json:"locationId"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Name          string   `json:"name"`
	Exclude       bool     `json:"exclude"`
	Trashed       bool     `json:"trashed"`
	GroupIDs      []int    `json:"groupIds"`
	Groups        []string `json:"groups"`
	DeviceCount   int      `json:"deviceCount"`
	Domain        *string  `json:"domain"`
	Notes         *string  `json:"notes"`
	TeacherGroups []int    `json:"teacherGroups"`
	Children      []int    `json:"children"`
	Modified      *string  `json:"modified"`
}

type UserGroupRecord struct {
	ID          int       `json:"id"`
	LocationID  int       `json:"locationId"`
	Name        string    `json:"name"`
	UserCount   int       `json:"userCount"`
	Description *string   `json:"description"`
	ACL         *GroupACL `json:"acl"`
}

// GroupACL values are "allow", "deny" or "inherit".
type GroupACL struct {
	Teacher string `json:"teacher"`
	Parent  string `json:"parent"`
}

type DeviceGroupRecord struct {
	ID           int     `json:"id"`
	LocationID   int     `json:"locationId"`
	Name         string  `json:"name"`
	IsSmartGroup bool    `json:"isSmartGroup"`
	IsShared     bool    `json:"isShared"`
	Members      int     `json:"members"`
	Description  *string `json:"description"`
	Type         string  `json:"type"`
	ImageURL     *string `json:"imageUrl"`
}

// LocationRecord only requires a name; the address fields are optional.
type LocationRecord struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	IsDistrict    bool    `json:"isDistrict"`
	Street        *string `json:"street"`
	StreetNumber  *string `json:"streetNumber"`
	PostalCode    *string `json:"postalCode"`
	City          *string `json:"city"`
	Source        *string `json:"source"`
	ASMIdentifier *string `json:"asmIdentifier"`
	SchoolNumber  *string `json:"schoolNumber"`
}

// AppRecord is a licensed app or book. AdamID is nil for in-house apps.
type AppRecord struct {
	ID           int     `json:"id"`
	LocationID   int     `json:"locationId"`
	Name         string  `json:"name"`
	BundleID     string  `json:"bundleId"`
	IsBook       bool    `json:"isBook"`
	AdamID       *int64  `json:"adamId"`
	Vendor       *string `json:"vendor"`
	Version      *string `json:"version"`
	ShortVersion *string `json:"shortVersion"`
	Platform     *string `json:"platform"`
	Icon         *string `json:"icon"`
	Description  *string `json:"description"`
}

// ProfileRecord carries the schedule fields when the profile has one.
type ProfileRecord struct {
	ID            int      `json:"id"`
	LocationID    int      `json:"locationId"`
	Name          string   `json:"name"`
	Identifier    string   `json:"identifier"`
	Platform      string   `json:"platform"`
	Type          string   `json:"type"`
	Description   *string  `json:"description"`
	IsTemplate    bool     `json:"isTemplate"`
	DaysOfTheWeek []string `json:"daysOfTheWeek"`
	StartTime     *string  `json:"startTime"`
	EndTime       *string  `json:"endTime"`
	UseHolidays   bool     `json:"useHolidays"`
}
