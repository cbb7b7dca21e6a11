package cave

import (
	"strconv"

	"cavemap/internal/core"
)

// Parameters reports the generator tunables for the HUD panel.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				int64Param("seed", "Seed", cfg.Seed),
				intParam("iterations", "Iterations", cfg.Iterations),
			},
		},
		{
			Name: "Automaton",
			Params: []core.Parameter{
				intParam("radius", "Window radius", cfg.Automaton.Radius),
				floatParam("threshold", "Density threshold", cfg.Automaton.Threshold),
			},
		},
		{
			Name: "Agent Ranges",
			Params: []core.Parameter{
				intParam("walks_min", "Walks min", cfg.Agent.Walks.Min),
				intParam("walks_max", "Walks max", cfg.Agent.Walks.Max),
				intParam("steps_min", "Steps min", cfg.Agent.Steps.Min),
				intParam("steps_max", "Steps max", cfg.Agent.Steps.Max),
				intParam("room_w_min", "Room width min", cfg.Agent.RoomW.Min),
				intParam("room_w_max", "Room width max", cfg.Agent.RoomW.Max),
				intParam("room_h_min", "Room height min", cfg.Agent.RoomH.Min),
				intParam("room_h_max", "Room height max", cfg.Agent.RoomH.Max),
				floatParam("prob_room_min", "Room prob min", cfg.Agent.ProbRoom.Min),
				floatParam("prob_room_max", "Room prob max", cfg.Agent.ProbRoom.Max),
				floatParam("prob_room_ramp_min", "Room ramp min", cfg.Agent.ProbRoomRamp.Min),
				floatParam("prob_room_ramp_max", "Room ramp max", cfg.Agent.ProbRoomRamp.Max),
				floatParam("prob_turn_min", "Turn prob min", cfg.Agent.ProbTurn.Min),
				floatParam("prob_turn_max", "Turn prob max", cfg.Agent.ProbTurn.Max),
				floatParam("prob_turn_ramp_min", "Turn ramp min", cfg.Agent.ProbTurnRamp.Min),
				floatParam("prob_turn_ramp_max", "Turn ramp max", cfg.Agent.ProbTurnRamp.Max),
			},
		},
		{
			Name: "Last Draw",
			Params: []core.Parameter{
				intParam("last_walks", "Walks", w.last.Walks),
				intParam("last_steps", "Steps", w.last.Steps),
				intParam("last_room_w", "Room width", w.last.RoomW),
				intParam("last_room_h", "Room height", w.last.RoomH),
				floatParam("last_prob_room", "Room prob", w.last.ProbRoom),
				floatParam("last_prob_turn", "Turn prob", w.last.ProbTurn),
				intParam("agent_x", "Agent X", w.agent.X),
				intParam("agent_y", "Agent Y", w.agent.Y),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "radius", Label: "Window radius", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "threshold", Label: "Density threshold", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "walks_min", Label: "Walks min", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "walks_max", Label: "Walks max", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "steps_min", Label: "Steps min", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "steps_max", Label: "Steps max", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "prob_room_min", Label: "Room prob min", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "prob_room_max", Label: "Room prob max", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable from the HUD.
func (w *World) SetIntParameter(key string, value int) bool {
	if value < 0 {
		return false
	}
	switch key {
	case "radius":
		w.cfg.Automaton.Radius = value
	case "walks_min":
		w.cfg.Agent.Walks.Min = value
		clampIntMax(&w.cfg.Agent.Walks)
	case "walks_max":
		w.cfg.Agent.Walks.Max = value
		clampIntMin(&w.cfg.Agent.Walks)
	case "steps_min":
		w.cfg.Agent.Steps.Min = value
		clampIntMax(&w.cfg.Agent.Steps)
	case "steps_max":
		w.cfg.Agent.Steps.Max = value
		clampIntMin(&w.cfg.Agent.Steps)
	case "room_w_min":
		w.cfg.Agent.RoomW.Min = value
		clampIntMax(&w.cfg.Agent.RoomW)
	case "room_w_max":
		w.cfg.Agent.RoomW.Max = value
		clampIntMin(&w.cfg.Agent.RoomW)
	case "room_h_min":
		w.cfg.Agent.RoomH.Min = value
		clampIntMax(&w.cfg.Agent.RoomH)
	case "room_h_max":
		w.cfg.Agent.RoomH.Max = value
		clampIntMin(&w.cfg.Agent.RoomH)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating-point tunable from the HUD.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		return false
	}
	switch key {
	case "threshold":
		if value > 1 {
			return false
		}
		w.cfg.Automaton.Threshold = value
	case "prob_room_min":
		if value > 1 {
			return false
		}
		w.cfg.Agent.ProbRoom.Min = value
		clampFloatMax(&w.cfg.Agent.ProbRoom)
	case "prob_room_max":
		if value > 1 {
			return false
		}
		w.cfg.Agent.ProbRoom.Max = value
		clampFloatMin(&w.cfg.Agent.ProbRoom)
	case "prob_turn_min":
		if value > 1 {
			return false
		}
		w.cfg.Agent.ProbTurn.Min = value
		clampFloatMax(&w.cfg.Agent.ProbTurn)
	case "prob_turn_max":
		if value > 1 {
			return false
		}
		w.cfg.Agent.ProbTurn.Max = value
		clampFloatMin(&w.cfg.Agent.ProbTurn)
	case "prob_room_ramp_min":
		w.cfg.Agent.ProbRoomRamp.Min = value
		clampFloatMax(&w.cfg.Agent.ProbRoomRamp)
	case "prob_room_ramp_max":
		w.cfg.Agent.ProbRoomRamp.Max = value
		clampFloatMin(&w.cfg.Agent.ProbRoomRamp)
	case "prob_turn_ramp_min":
		w.cfg.Agent.ProbTurnRamp.Min = value
		clampFloatMax(&w.cfg.Agent.ProbTurnRamp)
	case "prob_turn_ramp_max":
		w.cfg.Agent.ProbTurnRamp.Max = value
		clampFloatMin(&w.cfg.Agent.ProbTurnRamp)
	default:
		return false
	}
	return true
}

func clampIntMax(r *IntRange) {
	if r.Max < r.Min {
		r.Max = r.Min
	}
}

func clampIntMin(r *IntRange) {
	if r.Min > r.Max {
		r.Min = r.Max
	}
}

func clampFloatMax(r *FloatRange) {
	if r.Max < r.Min {
		r.Max = r.Min
	}
}

func clampFloatMin(r *FloatRange) {
	if r.Min > r.Max {
		r.Min = r.Max
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
