package friendships

// MakeFriendshipRequest HTTP request model
type MakeFriendshipRequest struct {
	FriendID  int64  `json:"friendId" validate:"required,gt=0"`
	GroupName string `json:"groupName" validate:"max=100"`
}

// MakeFriendshipResponse HTTP response model
type MakeFriendshipResponse struct {
	FriendID     int64 `json:"friendId"`
	EdgesCreated int   `json:"edgesCreated"`
}

// EndFriendshipResponse HTTP response model
type EndFriendshipResponse struct {
	FriendID     int64 `json:"friendId"`
	EdgesRemoved int64 `json:"edgesRemoved"`
}
