package tui

import (
	"github.com/lmiranda/quest-keeper/internal/signal"
	"github.com/lmiranda/quest-keeper/models"
)

type serverVersionMsg struct {
	version string
}

type authDoneMsg struct {
	user models.User
	err  error
}

type signedOutMsg struct {
	err error
}

type campaignsLoadedMsg struct {
	list models.CampaignList
	err  error
}

type campaignSavedMsg struct {
	campaign models.Campaign
	err      error
}

type campaignDeletedMsg struct {
	err error
}

type joinDoneMsg struct {
	campaign models.Campaign
	err      error
}

type membersLoadedMsg struct {
	members []models.Membership
}

type memberRemovedMsg struct {
	err error
}

type itemsLoadedMsg struct {
	kind  models.ItemKind
	items []models.Item
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type busNotifyMsg struct {
	topic signal.Topic
}

type copiedMsg struct{}

type clearStatusMsg struct{}
