package protocol

import "github.com/dezemand/openprotocol-go/codec"

// ErrorCode is the controller's status/negative-acknowledge code. Unlike
// the other enums in this package it is never rejected on decode: a number
// in the specific table below resolves to a named constant, a number in
// 900-999 resolves to ErrorCodeApplicationSpecific with Number preserved,
// and anything else resolves to ErrorCodeUnknown with Number preserved.
type ErrorCode struct {
	// Code is the named constant this number matches, or
	// ErrorCodeApplicationSpecific / ErrorCodeUnknown.
	Code ErrorCodeName
	// Number is the raw wire value, always populated so Application-
	// specific and Unknown codes keep their original number.
	Number uint16
}

type ErrorCodeName int

const (
	ErrorCodeNoError ErrorCodeName = iota
	ErrorCodeInvalidData
	ErrorCodeParameterSetIdNotPresent
	ErrorCodeParameterSetCannotBeSet
	ErrorCodeParameterSetNotRunning
	ErrorCodeVinUploadSubscriptionExists
	ErrorCodeVinUploadSubscriptionDoesNotExist
	ErrorCodeVinInputSourceNotGranted
	ErrorCodeLastTighteningResultSubscriptionExists
	ErrorCodeLastTighteningResultSubscriptionDoesNotExist
	ErrorCodeAlarmSubscriptionExists
	ErrorCodeAlarmSubscriptionDoesNotExist
	ErrorCodeParameterSetSelectionSubscriptionExists
	ErrorCodeParameterSetSelectionSubscriptionDoesNotExist
	ErrorCodeTighteningIdNotFound
	ErrorCodeConnectionRejectedProtocolBusy
	ErrorCodeJobIdNotPresent
	ErrorCodeJobInfoSubscriptionExists
	ErrorCodeJobInfoSubscriptionDoesNotExist
	ErrorCodeJobCannotBeSet
	ErrorCodeJobNotRunning
	ErrorCodeDynamicJobRequestNotPossible
	ErrorCodeJobBatchDecrementFailed
	ErrorCodeCreatePsetNotPossible
	ErrorCodeProgrammingControlNotGranted
	ErrorCodeWrongToolTypeForPsetDownload
	ErrorCodeToolInaccessible
	ErrorCodeJobAbortionInProgress
	ErrorCodeToolDoesNotExist
	ErrorCodeNotSyncMasterOrStationController
	ErrorCodeMultiSpindleStatusSubscriptionExists
	ErrorCodeMultiSpindleStatusSubscriptionDoesNotExist
	ErrorCodeMultiSpindleResultSubscriptionExists
	ErrorCodeMultiSpindleResultSubscriptionDoesNotExist
	ErrorCodeOtherMasterClientAlreadyConnected
	ErrorCodeLockTypeNotSupported
	ErrorCodeJobLineControlSubscriptionExists
	ErrorCodeJobLineControlSubscriptionDoesNotExist
	ErrorCodeIdentifierInputSourceNotGranted
	ErrorCodeMultipleIdentifiersWorkOrderSubscriptionExists
	ErrorCodeMultipleIdentifiersWorkOrderSubscriptionDoesNotExist
	ErrorCodeStatusExternalMonitoredInputsSubscriptionExists
	ErrorCodeStatusExternalMonitoredInputsSubscriptionDoesNotExist
	ErrorCodeIoDeviceNotConnected
	ErrorCodeFaultyIoDeviceId
	ErrorCodeToolTagIdUnknown
	ErrorCodeToolTagIdSubscriptionExists
	ErrorCodeToolTagIdSubscriptionDoesNotExist
	ErrorCodeToolMotorTuningFailed
	ErrorCodeNoAlarmPresent
	ErrorCodeToolCurrentlyInUse
	ErrorCodeNoHistogramAvailable
	ErrorCodePairingFailed
	ErrorCodePairingDenied
	ErrorCodePairingWrongToolType
	ErrorCodePairingAbortionDenied
	ErrorCodePairingAbortionFailed
	ErrorCodePairingDisconnectionFailed
	ErrorCodePairingInProgress
	ErrorCodePairingDeniedNoProgramControl
	ErrorCodeUnsupportedExtraDataRevision
	ErrorCodeCalibrationFailed
	ErrorCodeSubscriptionAlreadyExists
	ErrorCodeSubscriptionDoesNotExist
	ErrorCodeSubscribedMIDUnsupported
	ErrorCodeSubscribedMIDRevisionUnsupported
	ErrorCodeRequestedMIDUnsupported
	ErrorCodeRequestedMIDRevisionUnsupported
	ErrorCodeRequestedSpecificDataNotSupported
	ErrorCodeSubscriptionSpecificDataNotSupported
	ErrorCodeCommandFailed
	ErrorCodeAudiEmergencyStatusSubscriptionExists
	ErrorCodeAudiEmergencyStatusSubscriptionDoesNotExist
	ErrorCodeAutomaticManualModeSubscriptionExists
	ErrorCodeAutomaticManualModeSubscriptionDoesNotExist
	ErrorCodeRelayFunctionSubscriptionExists
	ErrorCodeRelayFunctionSubscriptionDoesNotExist
	ErrorCodeSelectorSocketInfoSubscriptionExists
	ErrorCodeSelectorSocketInfoSubscriptionDoesNotExist
	ErrorCodeDigitalInputSubscriptionExists
	ErrorCodeDigitalInputSubscriptionDoesNotExist
	ErrorCodeLockAtBatchDoneSubscriptionExists
	ErrorCodeLockAtBatchDoneSubscriptionDoesNotExist
	ErrorCodeOpenProtocolCommandsDisabled
	ErrorCodeOpenProtocolCommandsDisabledSubscriptionExists
	ErrorCodeOpenProtocolCommandsDisabledSubscriptionDoesNotExist
	ErrorCodeRejectRequestPowerMACSManualMode
	ErrorCodeRejectConnectionClientAlreadyConnected
	ErrorCodeMIDRevisionUnsupported
	ErrorCodeControllerInternalRequestTimeout
	ErrorCodeUnknownMID
	ErrorCodeIllegalPID
	ErrorCodeTighteningInProgress
	ErrorCodeDeleteOfObjectNotPossible
	ErrorCodeIllegalProgramID
	ErrorCodeIllegalNodeType
	// ErrorCodeApplicationSpecific covers the 900-999 range; Number holds
	// the actual wire value.
	ErrorCodeApplicationSpecific
	// ErrorCodeUnknown is the catch-all for anything outside the table
	// above and outside 900-999; Number holds the actual wire value.
	ErrorCodeUnknown
)

var errorCodeByNumber = map[uint16]ErrorCodeName{
	0:   ErrorCodeNoError,
	1:   ErrorCodeInvalidData,
	2:   ErrorCodeParameterSetIdNotPresent,
	3:   ErrorCodeParameterSetCannotBeSet,
	4:   ErrorCodeParameterSetNotRunning,
	6:   ErrorCodeVinUploadSubscriptionExists,
	7:   ErrorCodeVinUploadSubscriptionDoesNotExist,
	8:   ErrorCodeVinInputSourceNotGranted,
	9:   ErrorCodeLastTighteningResultSubscriptionExists,
	10:  ErrorCodeLastTighteningResultSubscriptionDoesNotExist,
	11:  ErrorCodeAlarmSubscriptionExists,
	12:  ErrorCodeAlarmSubscriptionDoesNotExist,
	13:  ErrorCodeParameterSetSelectionSubscriptionExists,
	14:  ErrorCodeParameterSetSelectionSubscriptionDoesNotExist,
	15:  ErrorCodeTighteningIdNotFound,
	16:  ErrorCodeConnectionRejectedProtocolBusy,
	17:  ErrorCodeJobIdNotPresent,
	18:  ErrorCodeJobInfoSubscriptionExists,
	19:  ErrorCodeJobInfoSubscriptionDoesNotExist,
	20:  ErrorCodeJobCannotBeSet,
	21:  ErrorCodeJobNotRunning,
	22:  ErrorCodeDynamicJobRequestNotPossible,
	23:  ErrorCodeJobBatchDecrementFailed,
	24:  ErrorCodeCreatePsetNotPossible,
	25:  ErrorCodeProgrammingControlNotGranted,
	26:  ErrorCodeWrongToolTypeForPsetDownload,
	27:  ErrorCodeToolInaccessible,
	28:  ErrorCodeJobAbortionInProgress,
	29:  ErrorCodeToolDoesNotExist,
	30:  ErrorCodeNotSyncMasterOrStationController,
	31:  ErrorCodeMultiSpindleStatusSubscriptionExists,
	32:  ErrorCodeMultiSpindleStatusSubscriptionDoesNotExist,
	33:  ErrorCodeMultiSpindleResultSubscriptionExists,
	34:  ErrorCodeMultiSpindleResultSubscriptionDoesNotExist,
	35:  ErrorCodeOtherMasterClientAlreadyConnected,
	36:  ErrorCodeLockTypeNotSupported,
	40:  ErrorCodeJobLineControlSubscriptionExists,
	41:  ErrorCodeJobLineControlSubscriptionDoesNotExist,
	42:  ErrorCodeIdentifierInputSourceNotGranted,
	43:  ErrorCodeMultipleIdentifiersWorkOrderSubscriptionExists,
	44:  ErrorCodeMultipleIdentifiersWorkOrderSubscriptionDoesNotExist,
	50:  ErrorCodeStatusExternalMonitoredInputsSubscriptionExists,
	51:  ErrorCodeStatusExternalMonitoredInputsSubscriptionDoesNotExist,
	52:  ErrorCodeIoDeviceNotConnected,
	53:  ErrorCodeFaultyIoDeviceId,
	54:  ErrorCodeToolTagIdUnknown,
	55:  ErrorCodeToolTagIdSubscriptionExists,
	56:  ErrorCodeToolTagIdSubscriptionDoesNotExist,
	57:  ErrorCodeToolMotorTuningFailed,
	58:  ErrorCodeNoAlarmPresent,
	59:  ErrorCodeToolCurrentlyInUse,
	60:  ErrorCodeNoHistogramAvailable,
	61:  ErrorCodePairingFailed,
	62:  ErrorCodePairingDenied,
	63:  ErrorCodePairingWrongToolType,
	64:  ErrorCodePairingAbortionDenied,
	65:  ErrorCodePairingAbortionFailed,
	66:  ErrorCodePairingDisconnectionFailed,
	67:  ErrorCodePairingInProgress,
	68:  ErrorCodePairingDeniedNoProgramControl,
	69:  ErrorCodeUnsupportedExtraDataRevision,
	70:  ErrorCodeCalibrationFailed,
	71:  ErrorCodeSubscriptionAlreadyExists,
	72:  ErrorCodeSubscriptionDoesNotExist,
	73:  ErrorCodeSubscribedMIDUnsupported,
	74:  ErrorCodeSubscribedMIDRevisionUnsupported,
	75:  ErrorCodeRequestedMIDUnsupported,
	76:  ErrorCodeRequestedMIDRevisionUnsupported,
	77:  ErrorCodeRequestedSpecificDataNotSupported,
	78:  ErrorCodeSubscriptionSpecificDataNotSupported,
	79:  ErrorCodeCommandFailed,
	80:  ErrorCodeAudiEmergencyStatusSubscriptionExists,
	81:  ErrorCodeAudiEmergencyStatusSubscriptionDoesNotExist,
	82:  ErrorCodeAutomaticManualModeSubscriptionExists,
	83:  ErrorCodeAutomaticManualModeSubscriptionDoesNotExist,
	84:  ErrorCodeRelayFunctionSubscriptionExists,
	85:  ErrorCodeRelayFunctionSubscriptionDoesNotExist,
	86:  ErrorCodeSelectorSocketInfoSubscriptionExists,
	87:  ErrorCodeSelectorSocketInfoSubscriptionDoesNotExist,
	88:  ErrorCodeDigitalInputSubscriptionExists,
	89:  ErrorCodeDigitalInputSubscriptionDoesNotExist,
	90:  ErrorCodeLockAtBatchDoneSubscriptionExists,
	91:  ErrorCodeLockAtBatchDoneSubscriptionDoesNotExist,
	92:  ErrorCodeOpenProtocolCommandsDisabled,
	93:  ErrorCodeOpenProtocolCommandsDisabledSubscriptionExists,
	94:  ErrorCodeOpenProtocolCommandsDisabledSubscriptionDoesNotExist,
	95:  ErrorCodeRejectRequestPowerMACSManualMode,
	96:  ErrorCodeRejectConnectionClientAlreadyConnected,
	97:  ErrorCodeMIDRevisionUnsupported,
	98:  ErrorCodeControllerInternalRequestTimeout,
	99:  ErrorCodeUnknownMID,
	100: ErrorCodeIllegalPID,
	101: ErrorCodeTighteningInProgress,
	102: ErrorCodeDeleteOfObjectNotPossible,
	103: ErrorCodeIllegalProgramID,
	104: ErrorCodeIllegalNodeType,
}

// DecodeErrorCode reads size ASCII digits and resolves them to a named
// code, the 900-999 application-specific range, or the unknown catch-all —
// in that order, matching the reference decoder.
func DecodeErrorCode(d *codec.Decoder, size int) (ErrorCode, error) {
	n, err := codec.DecodeUint16(d, size)
	if err != nil {
		return ErrorCode{}, err
	}
	if name, ok := errorCodeByNumber[n]; ok {
		return ErrorCode{Code: name, Number: n}, nil
	}
	if n >= 900 && n <= 999 {
		return ErrorCode{Code: ErrorCodeApplicationSpecific, Number: n}, nil
	}
	return ErrorCode{Code: ErrorCodeUnknown, Number: n}, nil
}

// EncodeErrorCode writes the raw wire number back out; Number is always
// kept in sync with Code by DecodeErrorCode and NewErrorCode.
func EncodeErrorCode(e *codec.Encoder, v ErrorCode, size int) error {
	return codec.EncodeUint16(e, v.Number, size)
}

// NewErrorCode builds an ErrorCode from a named constant, looking up its
// wire number. For ErrorCodeApplicationSpecific / ErrorCodeUnknown, pass the
// number directly via the ErrorCode struct literal instead.
func NewErrorCode(name ErrorCodeName) ErrorCode {
	for number, n := range errorCodeByNumber {
		if n == name {
			return ErrorCode{Code: name, Number: number}
		}
	}
	return ErrorCode{Code: ErrorCodeUnknown}
}
