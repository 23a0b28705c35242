// File: steamresult.go
// Package steambridge exposes the concurrent client over the native API.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package steambridge

import "fmt"

// SteamResult is the native API's universal status code (EResult). Values
// and meanings are fixed by the native SDK.
type SteamResult int32

// The native result catalog.
const (
	SteamResultOK                                      SteamResult = 1
	SteamResultFail                                    SteamResult = 2
	SteamResultNoConnection                            SteamResult = 3
	SteamResultInvalidPassword                         SteamResult = 5
	SteamResultLoggedInElsewhere                       SteamResult = 6
	SteamResultInvalidProtocolVer                      SteamResult = 7
	SteamResultInvalidParam                            SteamResult = 8
	SteamResultFileNotFound                            SteamResult = 9
	SteamResultBusy                                    SteamResult = 10
	SteamResultInvalidState                            SteamResult = 11
	SteamResultInvalidName                             SteamResult = 12
	SteamResultInvalidEmail                            SteamResult = 13
	SteamResultDuplicateName                           SteamResult = 14
	SteamResultAccessDenied                            SteamResult = 15
	SteamResultTimeout                                 SteamResult = 16
	SteamResultBanned                                  SteamResult = 17
	SteamResultAccountNotFound                         SteamResult = 18
	SteamResultInvalidSteamID                          SteamResult = 19
	SteamResultServiceUnavailable                      SteamResult = 20
	SteamResultNotLoggedOn                             SteamResult = 21
	SteamResultPending                                 SteamResult = 22
	SteamResultEncryptionFailure                       SteamResult = 23
	SteamResultInsufficientPrivilege                   SteamResult = 24
	SteamResultLimitExceeded                           SteamResult = 25
	SteamResultRevoked                                 SteamResult = 26
	SteamResultExpired                                 SteamResult = 27
	SteamResultAlreadyRedeemed                         SteamResult = 28
	SteamResultDuplicateRequest                        SteamResult = 29
	SteamResultAlreadyOwned                            SteamResult = 30
	SteamResultIPNotFound                              SteamResult = 31
	SteamResultPersistFailed                           SteamResult = 32
	SteamResultLockingFailed                           SteamResult = 33
	SteamResultLogonSessionReplaced                    SteamResult = 34
	SteamResultConnectFailed                           SteamResult = 35
	SteamResultHandshakeFailed                         SteamResult = 36
	SteamResultIOFailure                               SteamResult = 37
	SteamResultRemoteDisconnect                        SteamResult = 38
	SteamResultShoppingCartNotFound                    SteamResult = 39
	SteamResultBlocked                                 SteamResult = 40
	SteamResultIgnored                                 SteamResult = 41
	SteamResultNoMatch                                 SteamResult = 42
	SteamResultAccountDisabled                         SteamResult = 43
	SteamResultServiceReadOnly                         SteamResult = 44
	SteamResultAccountNotFeatured                      SteamResult = 45
	SteamResultAdministratorOK                         SteamResult = 46
	SteamResultContentVersion                          SteamResult = 47
	SteamResultTryAnotherCM                            SteamResult = 48
	SteamResultPasswordRequiredToKickSession           SteamResult = 49
	SteamResultAlreadyLoggedInElsewhere                SteamResult = 50
	SteamResultSuspended                               SteamResult = 51
	SteamResultCancelled                               SteamResult = 52
	SteamResultDataCorruption                          SteamResult = 53
	SteamResultDiskFull                                SteamResult = 54
	SteamResultRemoteCallFailed                        SteamResult = 55
	SteamResultPasswordUnset                           SteamResult = 56
	SteamResultExternalAccountUnlinked                 SteamResult = 57
	SteamResultPSNTicketInvalid                        SteamResult = 58
	SteamResultExternalAccountAlreadyLinked            SteamResult = 59
	SteamResultRemoteFileConflict                      SteamResult = 60
	SteamResultIllegalPassword                         SteamResult = 61
	SteamResultSameAsPreviousValue                     SteamResult = 62
	SteamResultAccountLogonDenied                      SteamResult = 63
	SteamResultCannotUseOldPassword                    SteamResult = 64
	SteamResultInvalidLoginAuthCode                    SteamResult = 65
	SteamResultAccountLogonDeniedNoMail                SteamResult = 66
	SteamResultHardwareNotCapableOfIPT                 SteamResult = 67
	SteamResultIPTInitError                            SteamResult = 68
	SteamResultParentalControlRestricted               SteamResult = 69
	SteamResultFacebookQueryError                      SteamResult = 70
	SteamResultExpiredLoginAuthCode                    SteamResult = 71
	SteamResultIPLoginRestrictionFailed                SteamResult = 72
	SteamResultAccountLockedDown                       SteamResult = 73
	SteamResultAccountLogonDeniedVerifiedEmailRequired SteamResult = 74
	SteamResultNoMatchingURL                           SteamResult = 75
	SteamResultBadResponse                             SteamResult = 76
	SteamResultRequirePasswordReEntry                  SteamResult = 77
	SteamResultValueOutOfRange                         SteamResult = 78
	SteamResultUnexpectedError                         SteamResult = 79
	SteamResultDisabled                                SteamResult = 80
	SteamResultInvalidCEGSubmission                    SteamResult = 81
	SteamResultRestrictedDevice                        SteamResult = 82
	SteamResultRegionLocked                            SteamResult = 83
	SteamResultRateLimitExceeded                       SteamResult = 84
	SteamResultAccountLoginDeniedNeedTwoFactor         SteamResult = 85
	SteamResultItemDeleted                             SteamResult = 86
	SteamResultAccountLoginDeniedThrottle              SteamResult = 87
	SteamResultTwoFactorCodeMismatch                   SteamResult = 88
	SteamResultTwoFactorActivationCodeMismatch         SteamResult = 89
	SteamResultAccountAssociatedToMultiplePartners     SteamResult = 90
	SteamResultNotModified                             SteamResult = 91
	SteamResultNoMobileDevice                          SteamResult = 92
	SteamResultTimeNotSynced                           SteamResult = 93
	SteamResultSmsCodeFailed                           SteamResult = 94
	SteamResultAccountLimitExceeded                    SteamResult = 95
	SteamResultAccountActivityLimitExceeded            SteamResult = 96
	SteamResultPhoneActivityLimitExceeded              SteamResult = 97
	SteamResultRefundToWallet                          SteamResult = 98
	SteamResultEmailSendFailure                        SteamResult = 99
	SteamResultNotSettled                              SteamResult = 100
	SteamResultNeedCaptcha                             SteamResult = 101
	SteamResultGSLTDenied                              SteamResult = 102
	SteamResultGSOwnerDenied                           SteamResult = 103
	SteamResultInvalidItemType                         SteamResult = 104
	SteamResultIPBanned                                SteamResult = 105
	SteamResultGSLTExpired                             SteamResult = 106
	SteamResultInsufficientFunds                       SteamResult = 107
	SteamResultTooManyPending                          SteamResult = 108
	SteamResultNoSiteLicensesFound                     SteamResult = 109
	SteamResultWGNetworkSendExceeded                   SteamResult = 110
	SteamResultAccountNotFriends                       SteamResult = 111
	SteamResultLimitedUserAccount                      SteamResult = 112
	SteamResultCantRemoveItem                          SteamResult = 113
	SteamResultAccountDeleted                          SteamResult = 114
	SteamResultExistingUserCancelledLicense            SteamResult = 115
	SteamResultCommunityCooldown                       SteamResult = 116
	SteamResultNoLauncherSpecified                     SteamResult = 117
	SteamResultMustAgreeToSSA                          SteamResult = 118
	SteamResultLauncherMigrated                        SteamResult = 119
	SteamResultSteamRealmMismatch                      SteamResult = 120
	SteamResultInvalidSignature                        SteamResult = 121
	SteamResultParseFailure                            SteamResult = 122
	SteamResultNoVerifiedPhone                         SteamResult = 123
)

var steamResultNames = map[SteamResult]string{
	SteamResultOK:                    "OK",
	SteamResultFail:                  "generic failure",
	SteamResultNoConnection:          "no connection",
	SteamResultInvalidPassword:       "invalid password or ticket",
	SteamResultLoggedInElsewhere:     "logged in elsewhere",
	SteamResultInvalidProtocolVer:    "invalid protocol version",
	SteamResultInvalidParam:          "invalid parameter",
	SteamResultFileNotFound:          "file not found",
	SteamResultBusy:                  "busy",
	SteamResultInvalidState:          "invalid state",
	SteamResultInvalidName:           "invalid name",
	SteamResultInvalidEmail:          "invalid email",
	SteamResultDuplicateName:         "duplicate name",
	SteamResultAccessDenied:          "access denied",
	SteamResultTimeout:               "timeout",
	SteamResultBanned:                "banned",
	SteamResultAccountNotFound:       "account not found",
	SteamResultInvalidSteamID:        "invalid steam id",
	SteamResultServiceUnavailable:    "service unavailable",
	SteamResultNotLoggedOn:           "not logged on",
	SteamResultPending:               "pending",
	SteamResultInsufficientPrivilege: "insufficient privilege",
	SteamResultLimitExceeded:         "limit exceeded",
	SteamResultRevoked:               "revoked",
	SteamResultExpired:               "expired",
	SteamResultDuplicateRequest:      "duplicate request",
	SteamResultBlocked:               "blocked",
	SteamResultIgnored:               "ignored",
	SteamResultNoMatch:               "no match",
	SteamResultAccountDisabled:       "account disabled",
	SteamResultServiceReadOnly:       "service read only",
	SteamResultCancelled:             "cancelled",
	SteamResultDataCorruption:        "data corruption",
	SteamResultDiskFull:              "disk full",
	SteamResultRemoteCallFailed:      "remote call failed",
	SteamResultRateLimitExceeded:     "rate limit exceeded",
	SteamResultItemDeleted:           "item deleted",
	SteamResultInvalidItemType:       "invalid item type",
	SteamResultIPBanned:              "ip banned",
	SteamResultTooManyPending:        "too many pending",
}

// String renders the code's conventional description, falling back to the
// numeric value for codes without a mapped message.
func (r SteamResult) String() string {
	if name, ok := steamResultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("steam result %d", int32(r))
}

// steamResultFromRaw converts the wire value. The catalog is closed; a value
// outside it means the record layout drifted from the native SDK, which is a
// contract violation.
func steamResultFromRaw(v int32) SteamResult {
	r := SteamResult(v)
	if r < SteamResultOK || r > SteamResultNoVerifiedPhone {
		panic(fmt.Sprintf("steambridge: unknown native result code %d", v))
	}
	return r
}

// SteamResultError wraps a non-OK result code from an asynchronous call.
type SteamResultError struct {
	Result SteamResult
}

// Error implements error.
func (e *SteamResultError) Error() string {
	return fmt.Sprintf("steam api call failed: %s", e.Result)
}

// resultErr maps a raw wire code to nil on success or a typed error.
func resultErr(raw int32) error {
	r := steamResultFromRaw(raw)
	if r == SteamResultOK {
		return nil
	}
	return &SteamResultError{Result: r}
}
