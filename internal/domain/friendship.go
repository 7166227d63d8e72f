package domain

import "time"

// Friendship направленное ребро user -> friend с меткой группы
// Для каждой пары хранится оба направления
type Friendship struct {
	UserID    int64
	FriendID  int64
	GroupName string
	CreatedAt time.Time
}

// FriendGroup группа гостей; все участники связаны попарно и с владельцем
type FriendGroup struct {
	ID        int64
	Name      string
	OwnerID   int64
	MemberIDs []int64
}

// Pair неупорядоченная пара гостей для построения дружбы
type Pair struct {
	A int64
	B int64
}

// Pairs возвращает пары owner↔member и все попарные сочетания участников
// Пары гостя с самим собой и повторы пропускаются
func (g *FriendGroup) Pairs() []Pair {
	seen := make(map[Pair]struct{})
	pairs := make([]Pair, 0, len(g.MemberIDs)*(len(g.MemberIDs)+1)/2)

	add := func(a, b int64) {
		if a == b {
			return
		}
		key := Pair{A: a, B: b}
		if a > b {
			key = Pair{A: b, B: a}
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		pairs = append(pairs, Pair{A: a, B: b})
	}

	for _, member := range g.MemberIDs {
		add(g.OwnerID, member)
	}
	for i := 0; i < len(g.MemberIDs); i++ {
		for j := i + 1; j < len(g.MemberIDs); j++ {
			add(g.MemberIDs[i], g.MemberIDs[j])
		}
	}

	return pairs
}
