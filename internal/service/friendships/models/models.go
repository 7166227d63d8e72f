package models

import (
	"time"

	"github.com/m04kA/tourism-booking-service/internal/domain"
)

// FriendResponse друг гостя с меткой группы
type FriendResponse struct {
	FriendID  int64     `json:"friendId"`
	GroupName string    `json:"groupName"`
	CreatedAt time.Time `json:"createdAt"`
}

// FriendGroupResponse друзья, сгруппированные по метке
type FriendGroupResponse struct {
	GroupName string           `json:"groupName"`
	Friends   []FriendResponse `json:"friends"`
}

// FriendListResponse ответ со списком друзей
type FriendListResponse struct {
	Total  int                   `json:"total"`
	Groups []FriendGroupResponse `json:"groups"`
}

// FromDomainFriendships группирует ребра по названию группы, сохраняя порядок репозитория
func FromDomainFriendships(edges []*domain.Friendship) *FriendListResponse {
	resp := &FriendListResponse{Groups: []FriendGroupResponse{}}
	index := make(map[string]int)

	for _, e := range edges {
		i, ok := index[e.GroupName]
		if !ok {
			i = len(resp.Groups)
			index[e.GroupName] = i
			resp.Groups = append(resp.Groups, FriendGroupResponse{GroupName: e.GroupName, Friends: []FriendResponse{}})
		}
		resp.Groups[i].Friends = append(resp.Groups[i].Friends, FriendResponse{
			FriendID:  e.FriendID,
			GroupName: e.GroupName,
			CreatedAt: e.CreatedAt,
		})
		resp.Total++
	}

	return resp
}
