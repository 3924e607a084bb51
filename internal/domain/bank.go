package domain

// Bank identifies a bank and the store listings it publishes. A nil identifier
// means the bank has no app on that platform.
type Bank struct {
	Name          string
	AppStoreID    *int64
	PlayPackageID *string
}

// HasAppStoreApp reports whether the bank is listed on the app store.
func (b Bank) HasAppStoreApp() bool {
	return b.AppStoreID != nil && *b.AppStoreID > 0
}

// HasPlayStoreApp reports whether the bank is listed on the play store.
func (b Bank) HasPlayStoreApp() bool {
	return b.PlayPackageID != nil && *b.PlayPackageID != ""
}
