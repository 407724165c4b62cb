package engine

// TransferTarget identifies where a call is routed when a transfer is
// recommended.
type TransferTarget string

const (
	TargetAE   TransferTarget = "AE"
	TargetBDR  TransferTarget = "BDR"
	TargetNone TransferTarget = ""
)

// Queue describes a transfer destination line.
type Queue struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

// transferQueues is the static directory of team queues.
var transferQueues = map[TransferTarget]Queue{
	TargetAE: {
		Name:        "Account Executive Queue",
		Phone:       "+1-555-0100",
		Description: "Qualified SQL leads",
	},
	TargetBDR: {
		Name:        "Business Development Rep Queue",
		Phone:       "+1-555-0200",
		Description: "Urgent SSL/DQ leads",
	},
}

// RoutingDecision is the transfer outcome for one evaluation. It is derived
// solely from the qualification result and the caller's AE assignment and
// never feeds back into scoring.
type RoutingDecision struct {
	ShouldTransfer bool
	Target         TransferTarget
	Queue          *Queue
	Reason         string
}

// Route applies the stateless routing decision table:
//
//	SQL               -> transfer to AE, regardless of urgency
//	SSL/DQ + high     -> transfer to BDR
//	SSL/DQ + low      -> continue the conversation
//
// An SQL lead already assigned to an account executive is routed to that
// AE's direct line instead of the general queue. Route is total over its
// domain and cannot fail.
func Route(tier Tier, urgency Urgency, caller *CallerInfo) RoutingDecision {
	if tier == TierSQL {
		queue := transferQueues[TargetAE]
		reason := "sales-qualified lead, routing to the account executive queue"
		if caller != nil && caller.AEPhone != "" {
			name := caller.AssignedAE
			if name == "" {
				name = "Account Executive"
			}
			queue = Queue{
				Name:        name,
				Phone:       caller.AEPhone,
				Description: "Direct transfer to assigned account executive",
			}
			reason = "sales-qualified lead, routing to the assigned account executive"
		}
		return RoutingDecision{
			ShouldTransfer: true,
			Target:         TargetAE,
			Queue:          &queue,
			Reason:         reason,
		}
	}

	if urgency == UrgencyHigh {
		queue := transferQueues[TargetBDR]
		return RoutingDecision{
			ShouldTransfer: true,
			Target:         TargetBDR,
			Queue:          &queue,
			Reason:         "urgent lead below the SQL bar, routing to the BDR queue",
		}
	}

	return RoutingDecision{
		Target: TargetNone,
		Reason: "continuing the conversation for further discovery",
	}
}
