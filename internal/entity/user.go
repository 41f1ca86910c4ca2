package entity

import "github.com/rocketscienceinc/wordwheel-backend/internal/apperror"

// User is the session record handed over by the auth screen on login.
type User struct {
	Username          string  `json:"username"`
	Mobile            string  `json:"mobile"`
	Coins             int     `json:"coins"`
	UnlockedThemes    []Theme `json:"unlockedThemes"`
	CurrentLevelIndex int     `json:"currentLevelIndex"`
	SoundEnabled      bool    `json:"soundEnabled"`
}

func (that *User) CanAfford(cost int) bool {
	return that.Coins >= cost
}

// Spend - deducts coins, rejecting the spend before any mutation when the balance is too low.
func (that *User) Spend(cost int) error {
	if !that.CanAfford(cost) {
		return apperror.ErrInsufficientFunds
	}

	that.Coins -= cost

	return nil
}

func (that *User) Reward(coins int) {
	that.Coins += coins
}

func (that *User) AdvanceLevel() {
	that.CurrentLevelIndex++
}

func (that *User) HasTheme(theme Theme) bool {
	for _, unlocked := range that.UnlockedThemes {
		if unlocked == theme {
			return true
		}
	}

	return false
}

func (that *User) UnlockTheme(theme Theme) bool {
	if that.HasTheme(theme) {
		return false
	}

	that.UnlockedThemes = append(that.UnlockedThemes, theme)

	return true
}

// Clone - returns a copy safe to hand to another goroutine.
func (that *User) Clone() *User {
	clone := *that
	clone.UnlockedThemes = append([]Theme(nil), that.UnlockedThemes...)

	return &clone
}
