package users

// Profile is the user document served by the users host.
type Profile struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	DisplayName      string `json:"displayName"`
	Description      string `json:"description"`
	Created          string `json:"created"`
	IsBanned         bool   `json:"isBanned"`
	HasVerifiedBadge bool   `json:"hasVerifiedBadge"`
}

// FriendEntry is one user inside a friends, followers or followings listing.
type FriendEntry struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	DisplayName      string `json:"displayName"`
	Description      string `json:"description"`
	Created          string `json:"created"`
	IsOnline         bool   `json:"isOnline"`
	IsDeleted        bool   `json:"isDeleted"`
	IsBanned         bool   `json:"isBanned"`
	HasVerifiedBadge bool   `json:"hasVerifiedBadge"`
}

// FriendsPage is the friends listing document.
type FriendsPage struct {
	Data []FriendEntry `json:"data"`
}

// FollowerPage is a cursor-paged followers or followings listing.
type FollowerPage struct {
	PreviousPageCursor string        `json:"previousPageCursor"`
	NextPageCursor     string        `json:"nextPageCursor"`
	Data               []FriendEntry `json:"data"`
}

// Presence describes where an online friend currently is.
type Presence struct {
	UserPresenceType string `json:"UserPresenceType"`
	LastLocation     string `json:"lastLocation"`
	PlaceID          uint64 `json:"placeId"`
	RootPlaceID      uint64 `json:"rootPlaceId"`
	UniverseID       uint64 `json:"universeId"`
	GameID           string `json:"gameId"`
	LastOnline       string `json:"lastOnline"`
}

// OnlineFriend is one entry of the friends-online listing.
type OnlineFriend struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	DisplayName  string   `json:"displayName"`
	UserPresence Presence `json:"userPresence"`
}

// OnlineFriendsPage is the friends-online document.
type OnlineFriendsPage struct {
	Data []OnlineFriend `json:"data"`
}

// Group is the group half of a group-role membership.
type Group struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	MemberCount      int64  `json:"memberCount"`
	HasVerifiedBadge bool   `json:"hasVerifiedBadge"`
}

// GroupRole is the caller's role inside one group.
type GroupRole struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

// GroupMembership pairs a group with the user's role in it.
type GroupMembership struct {
	Group Group     `json:"group"`
	Role  GroupRole `json:"role"`
}

// GroupRolesPage is the group-memberships document.
type GroupRolesPage struct {
	Data []GroupMembership `json:"data"`
}

// countDocument is the {"count":N} shape shared by the counter endpoints.
type countDocument struct {
	Count int64 `json:"count"`
}
