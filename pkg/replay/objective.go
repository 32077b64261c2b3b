package replay

// ParameterKind classifies what runtime parameter an objective label
// expects. The mapping below is reverse-engineered from observed replays,
// so a single id carries several candidate labels rather than one
// authoritative name.
type ParameterKind uint8

const (
	// NoParameter marks labels for objectives issued without a parameter.
	NoParameter ParameterKind = iota
	// Position marks labels for objectives aimed at a map position.
	Position
	// Unit marks labels for objectives aimed at a specific unit.
	Unit
	// PositionOrUnit marks labels for objectives accepting either.
	PositionOrUnit
	// Time marks labels for time-travel objectives carrying a target time.
	Time
)

type objectiveEntry struct {
	label string
	kind  ParameterKind
}

// LookupObjective returns the candidate display labels for an objective id.
// When the command supplied a runtime parameter, only labels whose kind
// takes a parameter are returned; otherwise only parameterless labels.
// Unknown ids and ids with no matching labels yield an empty list.
func LookupObjective(id uint8, hasParameter bool) []string {
	var labels []string
	for _, e := range objectiveTable[id] {
		if e.label == "" {
			continue
		}
		if hasParameter == (e.kind != NoParameter) {
			labels = append(labels, e.label)
		}
	}
	return labels
}

var objectiveTable = map[uint8][]objectiveEntry{
	0: {{"Idle/Defend", PositionOrUnit}, {"", NoParameter}, {"Landing", Position}, {"Progeneration", NoParameter}, {"---", NoParameter}, {"Defend", PositionOrUnit}, {"Moving", NoParameter}, {"Attacking...", PositionOrUnit}, {"Importing Reserves", NoParameter}, {"Idle", NoParameter}},
	1: {{"Move", Position}, {"display waypoint", Position}, {"New (Down)", NoParameter}, {"Attack Unit", Unit}, {"Processing", NoParameter}, {"Build MFB", NoParameter}, {"Time Warping", Time}, {"Build Tornade", NoParameter}, {"Relocate", Position}},
	2: {{"Attack", PositionOrUnit}, {"New (Up)", NoParameter}, {"Process Resource", NoParameter}, {"Move", Position}, {"Process Resources", NoParameter}, {"Exploding", NoParameter}, {"Build Frigate", NoParameter}, {"Create Marines", NoParameter}, {"Build Mech", NoParameter}, {"Change Controller", NoParameter}},
	3: {{"Patrol", Position}, {"New (Down Left)", NoParameter}, {"Make Octo", NoParameter}, {"Build MFB", NoParameter}, {"Create SOPs", NoParameter}, {"Build ATHC", NoParameter}, {"Create Unit", Unit}},
	4: {{"Attack Unit", Unit}, {"New (Down Right)", NoParameter}, {"Make Sepi", NoParameter}, {"Turn AutoCommand ON", NoParameter}, {"Turn Auto Hierarchy ON", NoParameter}, {"Build Blackbird", NoParameter}, {"Build Lancer", NoParameter}, {"Release Unit", Unit}},
	5: {{"Moving", NoParameter}, {"New (Up Left)", NoParameter}, {"Make Pharo", NoParameter}, {"Turn Smart Idle ON", NoParameter}, {"Build Heavy Cruiser", NoParameter}, {"Out", NoParameter}, {"Build Tornade", NoParameter}, {"Take Unit", Unit}},
	6: {{"Attacking", PositionOrUnit}, {"New (Up Right)", NoParameter}, {"Moving", NoParameter}, {"Turn AutoCommand OFF", NoParameter}, {"Turn Auto Hierarchy OFF", NoParameter}, {"Build MAR Tank", NoParameter}, {"Build Tank", NoParameter}, {"Teleport Unit", Unit}},
	7: {{"Patrolling", Position}, {"Turn Smart Idle OFF", NoParameter}, {"Build Heavy Cruiser", NoParameter}, {"Build Tank", NoParameter}, {"Kill Unit", Unit}},
	8: {{"Change Commander", Unit}, {"Select Unit", Unit}, {"Relocate", Position}, {"Attack", PositionOrUnit}, {"Build Blackbird", NoParameter}, {"Attack Unit", Unit}, {"displaying waypoint", Position}},
	9: {{"Remove from Hierarchy", Position}, {"Remove from Heirarchy", Position}, {"Relocate", Position}, {"Move", Position}, {"Clear Commander", Unit}, {"Rotate Unit", Unit}},
	10: {{"Priority", NoParameter}, {"Lead group", Unit}, {"Moving", NoParameter}, {"Teleport Self To", Position}, {"Move", Position}},
	11: {{"Build", NoParameter}, {"Nanite Infect", Unit}, {"Place buildings", Position}, {"Activating", NoParameter}, {"Merge", Unit}, {"Stop and re-enable", NoParameter}, {"Load Unit", Unit}, {"Build Foundation", NoParameter}, {"Chrono-Freeze", Time}, {"Stopping", NoParameter}, {"Defend/Repel", PositionOrUnit}, {"Build Resource Processor", NoParameter}, {"Build Comm Hub", NoParameter}, {"Drop Nuke Now ", Position}, {"Resource Processor", NoParameter}, {"Comm Jam", PositionOrUnit}, {"Morph: Reaph", NoParameter}, {"Morph: Arcticus", NoParameter}},
	12: {{"Clear Nanite", NoParameter}, {"Build Foundation", NoParameter}, {"Upgrade Tank", NoParameter}, {"Activate", NoParameter}, {"Merge", Unit}, {"Release Cargo", NoParameter}, {"Upgrade", NoParameter}, {"Temporal Soliton Shield", NoParameter}, {"Stop", NoParameter}, {"Nuke a Location", Position}, {"Moving to Morph ", NoParameter}},
	13: {{"Ride in a Tank", Unit}, {"Cancel Progen for All", NoParameter}, {"Cancel Build", NoParameter}, {"Merge", Unit}, {"LCrystal -> QPlasma", NoParameter}, {"Merging", Unit}, {"Clear Nanite", NoParameter}, {"Morph to Pharo", NoParameter}, {"displaying waypoint", Position}, {"QPlasma -> LCrystal", NoParameter}},
	14: {{"Cancel Build", NoParameter}, {"Fix Troops", NoParameter}, {"Cancel Factory/Progeneration", NoParameter}, {"Cancel Make Buildings", NoParameter}, {"Clear Nanite", NoParameter}, {"Fix Unit", Unit}, {"Recharging", NoParameter}, {"Cancel Piloting", Unit}, {"Reload Nuke", Position}, {"Cancel Progeneration", NoParameter}},
	15: {{"Cancel Build", NoParameter}, {"Recover Status", NoParameter}, {"Recover", NoParameter}, {"Break TSS", NoParameter}, {"Deploying Units", Unit}, {"Deploying Troops", Position}, {"Deploy Unit", Unit}},
	16: {{"Stop", NoParameter}, {"Chronobomb", Time}, {"Deploying Units", Unit}, {"Deploying Troops", Position}, {"Temporal Soliton Shield", NoParameter}, {"PreDeploy", Position}},
	17: {{"Release Troop", NoParameter}, {"ChronoBomb", Time}, {"Release Unit", Unit}, {"Break TSS", NoParameter}, {"Cloaking On", NoParameter}, {"Morph: Dome", NoParameter}},
	18: {{"", NoParameter}, {"Congregate units at", Unit}, {"Plasma Bomb", PositionOrUnit}, {"Congregate Units At", Unit}, {"Congregate Troops At", Position}, {"Morph: Dome", NoParameter}, {"Morph: Mound", NoParameter}},
	19: {{"", NoParameter}, {"Clear Congregation Point", NoParameter}, {"Upgrade Tank", NoParameter}, {"Upgrade Skip-Teleport", Position}, {"Upgrading", NoParameter}, {"Chronobomb", Time}, {"Upgrade Beam", NoParameter}, {"Repel", PositionOrUnit}, {"Upgrade", NoParameter}},
	20: {{"Rally on unit", Unit}, {"Skip Torpedo", PositionOrUnit}, {"Nanite Infect", Unit}, {"Plasma Bomb", PositionOrUnit}, {"Fire Charge Beam", NoParameter}, {"Uncloak", NoParameter}, {"Repel", PositionOrUnit}, {"Chrono-Freeze ", Time}, {"Equip Nuke", Position}, {"Auto Slingshot", PositionOrUnit}, {"Defend/Repel", PositionOrUnit}, {"Launch Skip Torpedo", PositionOrUnit}, {"Comm Jam", PositionOrUnit}},
	21: {{"Teleport Self To", Position}, {"Relink (to Arcticus)", Unit}, {"ChronoBomb", Time}, {"", NoParameter}, {"Rally on unit", Unit}, {"Cancel Defend/Repel", PositionOrUnit}},
	22: {{"Resource Processor", NoParameter}, {"Slingshot", PositionOrUnit}, {"Skip Torpedo", PositionOrUnit}, {"Attack Dispatch", Position}, {"Plasma Bomb", PositionOrUnit}, {"Equip Nuke", Position}},
	23: {{"Importer", NoParameter}, {"Teleporter", Position}, {"Move Dispatch", Position}, {"ChronoBomb", Time}, {"", NoParameter}, {"displaying waypoint", Position}, {"Auto Slingshot Enabled", PositionOrUnit}},
	24: {{"Factory", NoParameter}, {"Defense Turret", NoParameter}, {"Stop Dispatch", Position}, {"Upgrade Adv Structures", NoParameter}, {"Make Vehicles", NoParameter}, {"Upgrade Machinery", NoParameter}, {"Upgrade Autodefence", NoParameter}},
	25: {{"Armory", NoParameter}, {"Macrofab", NoParameter}, {"Chronoport Dispatch", Time}, {"", NoParameter}, {"Make Vehicles", NoParameter}},
	26: {{"Comm Center", NoParameter}, {"Defense Turret", NoParameter}, {"Make Resource Processor", NoParameter}, {"Upgrade Loligo Class", NoParameter}, {"Upgrade Ground Units", Unit}, {"Research Halcyon Class", NoParameter}},
	27: {{"Slingshot", PositionOrUnit}, {"Create Depot", NoParameter}, {"Make Mound", NoParameter}, {"", NoParameter}},
	28: {{"Chronoporter", Time}, {"Make Reaph", NoParameter}, {"Upgrade Specials", NoParameter}},
	29: {{"Teleporter", Position}, {"Create Annex", NoParameter}, {"Make Arcticus", NoParameter}, {"", NoParameter}},
	30: {{"Chronoporter", Time}, {"Make Spyre", NoParameter}, {"Upgrade Chronoporting", Time}, {"Zayin Pulser", NoParameter}, {"Upgrade Gate Tech", NoParameter}},
	31: {{"Carrier", NoParameter}, {"Make Dome", NoParameter}, {"", NoParameter}, {"Teth Pulser", NoParameter}, {"Garguntuan", NoParameter}, {"Spyre", NoParameter}},
	32: {{"Carrier", NoParameter}, {"Make Dome", NoParameter}, {"Upgrade Weapons", NoParameter}, {"Shin Pulser", NoParameter}, {"Upgrade Aerospace", NoParameter}, {"", NoParameter}, {"Upgrade Weaponry", NoParameter}, {"Spyre", NoParameter}},
	33: {{"Awaiting Air-Lift", NoParameter}, {"Make Spyre", NoParameter}, {"", NoParameter}, {"Zayin Tercher", NoParameter}},
	34: {{"Carry/Commander", Unit}, {"Select Unit", Unit}, {"Create SlipGate", NoParameter}, {"Chronoport Dispatch", Time}, {"Teth Tercher", NoParameter}},
	35: {{"Carrier", NoParameter}, {"Create Bastion", NoParameter}, {"Shin Tercher", NoParameter}},
	36: {{"Importer", NoParameter}, {"Create Incepter", NoParameter}, {"Upgrade Chronoporting", Time}, {"Zayin Halcyon", NoParameter}, {"Upgrade Gate Tech", NoParameter}, {"Octo RP Dispatch", Position}},
	37: {{"Armory", NoParameter}, {"Create Incepter", NoParameter}, {"Upgrade Chronoporting", Time}, {"Teth Halcyon", NoParameter}, {"Factory/Progeneration", NoParameter}},
	38: {{"Produce Octopod", NoParameter}, {"Upgrade Weapons", NoParameter}, {"Shin Halcyon", NoParameter}, {"Upgrade Aerospace", NoParameter}, {"Upgrade Weaponry", NoParameter}, {"Produce Octo", NoParameter}},
	39: {{"Produce Sepipod", NoParameter}, {"Create Incepter", NoParameter}, {"Upgrade Weapons", NoParameter}, {"", NoParameter}, {"Upgrade Aerospace", NoParameter}, {"Upgrade Weaponry", NoParameter}, {"Pilot Vehicle", Unit}, {"Produce Sepi", NoParameter}},
	40: {{"Produce Pharopod", NoParameter}, {"Upgrade Adv Structures", NoParameter}, {"Shin Pulser", NoParameter}, {"Split Down", NoParameter}, {"Upgrade Machinery", NoParameter}, {"Upgrade Autodefense", NoParameter}, {"Pilot Pulser", Unit}, {"Produce Pharo", NoParameter}},
	41: {{"Produce Octoligo", NoParameter}, {"Upgrade Specials", NoParameter}, {"Teth Tercher", NoParameter}, {"Equip Nuke", Position}, {"Pilot Tercher", Unit}, {"Produce Octopod", NoParameter}},
	42: {{"Produce Sepiligo", NoParameter}, {"Preparing Halcyon", NoParameter}, {"Upgrade Loligo Class", NoParameter}, {"Shin Tercher", NoParameter}, {"Upgrade Ground Units", Unit}, {"Research Halcyon Class", NoParameter}, {"Pilot Halcyon", Unit}, {"Produce Sepipod", NoParameter}},
	43: {{"Produce Pharoligo", NoParameter}, {"Zayin Halcyon", NoParameter}, {"Create Marines", NoParameter}, {"Create Zayin Vir", NoParameter}, {"Pilot Halcyon", Unit}, {"Produce Pharopod", NoParameter}},
	44: {{"Octopod", NoParameter}, {"Repairing in Depot", NoParameter}, {"Teth Halcyon", NoParameter}, {"Create SOPs", NoParameter}, {"Create Teth Vir", NoParameter}, {"Octo", NoParameter}},
	45: {{"Chronoport", Time}, {"", NoParameter}, {"Sepipod", NoParameter}, {"Shin Halcyon", NoParameter}, {"Create Shin Vir", NoParameter}, {"Sepi", NoParameter}},
	46: {{"Chronoport", Time}, {"Pharopod", NoParameter}, {"Shin Halcyon", NoParameter}, {"Chronoport ", Time}, {"Create Zayin Vir", NoParameter}, {"Pharo", NoParameter}},
	47: {{"Teleport", Position}, {"Octoligo", NoParameter}, {"Teleport Self To", Position}, {"Create Teth Vir", NoParameter}, {"Octopod", NoParameter}},
	48: {{"Chronoport", Time}, {"Sepiligo", NoParameter}, {"Create Shin Vir", NoParameter}, {"Sepipod", NoParameter}},
	49: {{"MoveAway", Position}, {"Move Away", Position}, {"Pharoligo", NoParameter}, {"Pharopod", NoParameter}, {"Pharpod", NoParameter}},
	50: {{"Teleport", Position}, {"", NoParameter}, {"Octoligo", NoParameter}, {"Constructing...", NoParameter}, {"Morphing...", NoParameter}, {"Human", NoParameter}},
	51: {{"Sepiligo", NoParameter}, {"", NoParameter}, {"Grekim", NoParameter}},
	52: {{"Pharoligo", NoParameter}, {"Imprison", Unit}, {"", NoParameter}, {"Vecgir", NoParameter}, {"Upgrade Power", NoParameter}, {"Octo Resource Processor", NoParameter}},
	53: {{"Sepiligo", NoParameter}, {"", NoParameter}, {"Random", NoParameter}, {"Upgrade Power", NoParameter}},
	54: {{"Attacking Unit", Unit}, {"Pharoligo", NoParameter}, {"Upgrade Power", NoParameter}},
	55: {{"Sepipod", NoParameter}},
	56: {{"Pharopod", NoParameter}},
	57: {{"Create Slipgate", NoParameter}, {"", NoParameter}},
	58: {{"Create Bastion", NoParameter}, {"", NoParameter}},
	59: {{"Create ACC", NoParameter}},
}