package ecs

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/brickbreaker/common"
	"github.com/milk9111/brickbreaker/levels"
)

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeGoal
	collisionTypeBall
	collisionTypePaddle
	collisionTypeBrick
	collisionTypeHazard
)

// Body geometry in world units.
const (
	BallRadius      = 0.3
	PaddleBaseWidth = 3.0
	PaddleThickness = 0.6
	HazardRadius    = 0.5

	wallRadius = 0.5
)

type bodyKind int

const (
	bodyBall bodyKind = iota + 1
	bodyPaddle
	bodyBrick
	bodyHazard
)

type bodyRec struct {
	kind   bodyKind
	body   *cp.Body // nil for bricks, their shapes ride the static body
	shapes []*cp.Shape
	half   float64 // paddle half width, for the arena clamp
}

// BrickHit is one ball-brick contact recorded during a step.
type BrickHit struct {
	Brick Entity
	Ball  Entity
}

// ContactLog accumulates the collision facts a step produced. Handlers only
// append here; the detection stage consumes the log at the start of the next
// update and turns it into domain effects.
type ContactLog struct {
	BrickHits     []BrickHit
	GoalBalls     []Entity
	GoalHazards   []Entity
	PaddleHazards []Entity
}

// PhysicsWorld owns the Chipmunk space, the static arena shapes, and the
// per-entity bodies. The space's own gravity is permanently zero: the only
// gravity in the arena is the per-ball pull set through SetBallGravity, so
// paddle and hazards can never pick it up.
type PhysicsWorld struct {
	space         *cp.Space
	cfg           PhysicsConfig
	handlersReady bool

	ballGravity cp.Vector
	frozen      map[Entity]bool

	shapeToEntity map[*cp.Shape]Entity
	bodies        map[Entity]*bodyRec
	contacts      ContactLog
}

// NewPhysicsWorld creates the arena: side and top walls, the lower-goal
// sensor, and the collision handlers.
func NewPhysicsWorld(cfg PhysicsConfig) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	pw := &PhysicsWorld{
		space:         space,
		cfg:           cfg,
		frozen:        make(map[Entity]bool),
		shapeToEntity: make(map[*cp.Shape]Entity),
		bodies:        make(map[Entity]*bodyRec),
	}
	pw.buildArena()
	pw.setupHandlers()
	log.Printf("PhysicsWorld: arena %gx%g ready", levels.ArenaWidth, levels.ArenaHeight)
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// SetBallGravity sets the pull every unfrozen ball integrates next step.
// The store's X axis (pull toward the lower goal) maps to the space's +y,
// the sideways Z axis to +x.
func (pw *PhysicsWorld) SetBallGravity(v common.Vec3) {
	if pw == nil {
		return
	}
	pw.ballGravity = cp.Vector{X: v.Z, Y: v.X}
}

// SetFrozen pins or releases a ball. A frozen ball's velocity func holds it
// at zero velocity no matter what the store says.
func (pw *PhysicsWorld) SetFrozen(e Entity, frozen bool) {
	if pw == nil {
		return
	}
	if frozen {
		pw.frozen[e] = true
		if rec, ok := pw.bodies[e]; ok && rec.body != nil {
			rec.body.SetVelocityVector(cp.Vector{})
		}
		return
	}
	delete(pw.frozen, e)
}

// AddBall creates the dynamic ball body at (x, y), initially at rest.
func (pw *PhysicsWorld) AddBall(e Entity, x, y float64) {
	if pw == nil || pw.space == nil {
		return
	}
	tuning := pw.cfg.Ball
	moment := cp.MomentForCircle(tuning.Mass, 0, BallRadius, cp.Vector{})
	body := cp.NewBody(tuning.Mass, moment)
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetVelocityUpdateFunc(func(b *cp.Body, _ cp.Vector, damping float64, dt float64) {
		if pw.frozen[e] {
			b.SetVelocityVector(cp.Vector{})
			return
		}
		if tuning.Damping != 1 {
			damping = math.Pow(tuning.Damping, dt)
		}
		cp.BodyUpdateVelocity(b, pw.ballGravity, damping, dt)
	})
	pw.space.AddBody(body)

	shape := cp.NewCircle(body, BallRadius, cp.Vector{})
	shape.SetElasticity(tuning.Restitution)
	shape.SetFriction(tuning.Friction)
	shape.SetCollisionType(collisionTypeBall)
	pw.space.AddShape(shape)

	pw.register(e, &bodyRec{kind: bodyBall, body: body, shapes: []*cp.Shape{shape}})
}

// AddPaddle creates the kinematic paddle body centered at (x, y).
func (pw *PhysicsWorld) AddPaddle(e Entity, x, y, width float64) {
	if pw == nil || pw.space == nil {
		return
	}
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: x, Y: y})
	pw.space.AddBody(body)

	shape := pw.paddleShape(body, width)
	pw.space.AddShape(shape)

	rec := &bodyRec{kind: bodyPaddle, body: body, shapes: []*cp.Shape{shape}, half: width / 2}
	pw.register(e, rec)
}

// ResizePaddle swaps the paddle's box shape for one of the given width.
func (pw *PhysicsWorld) ResizePaddle(e Entity, width float64) {
	rec, ok := pw.lookup(e)
	if !ok || rec.kind != bodyPaddle || rec.body == nil {
		return
	}
	for _, shape := range rec.shapes {
		pw.space.RemoveShape(shape)
		delete(pw.shapeToEntity, shape)
	}
	shape := pw.paddleShape(rec.body, width)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	rec.shapes = []*cp.Shape{shape}
	rec.half = width / 2
}

func (pw *PhysicsWorld) paddleShape(body *cp.Body, width float64) *cp.Shape {
	shape := cp.NewBox(body, width, PaddleThickness, 0)
	shape.SetElasticity(pw.cfg.Paddle.Restitution)
	shape.SetFriction(pw.cfg.Paddle.Friction)
	shape.SetCollisionType(collisionTypePaddle)
	return shape
}

// AddBrick places a static brick box on the grid cell.
func (pw *PhysicsWorld) AddBrick(e Entity, row, col int) {
	if pw == nil || pw.space == nil {
		return
	}
	cx, cy := levels.CellCenter(row, col)
	bb := cp.BB{
		L: cx - levels.CellWidth/2,
		B: cy - levels.CellHeight/2,
		R: cx + levels.CellWidth/2,
		T: cy + levels.CellHeight/2,
	}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetElasticity(pw.cfg.Brick.Restitution)
	shape.SetFriction(pw.cfg.Brick.Friction)
	shape.SetCollisionType(collisionTypeBrick)
	pw.space.AddShape(shape)

	pw.register(e, &bodyRec{kind: bodyBrick, shapes: []*cp.Shape{shape}})
}

// AddHazard creates a roaming hazard body. Hazards pin zero gravity in
// their velocity func; steering owns their velocity entirely.
func (pw *PhysicsWorld) AddHazard(e Entity, x, y, vx, vy float64) {
	if pw == nil || pw.space == nil {
		return
	}
	tuning := pw.cfg.Hazard
	moment := cp.MomentForCircle(tuning.Mass, 0, HazardRadius, cp.Vector{})
	body := cp.NewBody(tuning.Mass, moment)
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetVelocity(vx, vy)
	body.SetVelocityUpdateFunc(func(b *cp.Body, _ cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(b, cp.Vector{}, damping, dt)
	})
	pw.space.AddBody(body)

	shape := cp.NewCircle(body, HazardRadius, cp.Vector{})
	shape.SetElasticity(tuning.Restitution)
	shape.SetFriction(tuning.Friction)
	shape.SetCollisionType(collisionTypeHazard)
	pw.space.AddShape(shape)

	pw.register(e, &bodyRec{kind: bodyHazard, body: body, shapes: []*cp.Shape{shape}})
}

// RemoveEntity drops an entity's shapes and body from the space. Safe to
// call for entities that never had a body.
func (pw *PhysicsWorld) RemoveEntity(e Entity) {
	if pw == nil {
		return
	}
	rec, ok := pw.bodies[e]
	if !ok {
		return
	}
	for _, shape := range rec.shapes {
		pw.space.RemoveShape(shape)
		delete(pw.shapeToEntity, shape)
	}
	if rec.body != nil {
		pw.space.RemoveBody(rec.body)
	}
	delete(pw.bodies, e)
	delete(pw.frozen, e)
}

// Step advances the simulation, then clamps ball speed and keeps paddles
// inside the arena (kinematic bodies never collide with the static walls).
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)

	for _, rec := range pw.bodies {
		switch rec.kind {
		case bodyBall:
			v := rec.body.Velocity()
			if speed := v.Length(); speed > pw.cfg.MaxBallSpeed && speed > 0 {
				rec.body.SetVelocityVector(v.Mult(pw.cfg.MaxBallSpeed / speed))
			}
		case bodyPaddle:
			pos := rec.body.Position()
			lo, hi := rec.half, levels.ArenaWidth-rec.half
			if pos.X < lo {
				rec.body.SetPosition(cp.Vector{X: lo, Y: pos.Y})
				rec.body.SetVelocityVector(cp.Vector{})
			} else if pos.X > hi {
				rec.body.SetPosition(cp.Vector{X: hi, Y: pos.Y})
				rec.body.SetVelocityVector(cp.Vector{})
			}
		}
	}
}

// Harvest returns the contact facts recorded by the last step and resets
// the log.
func (pw *PhysicsWorld) Harvest() ContactLog {
	if pw == nil {
		return ContactLog{}
	}
	out := pw.contacts
	pw.contacts = ContactLog{}
	return out
}

// PaddleOverlaps returns the brick entities whose shapes intersect the
// paddle's bounding box. The paddle is kinematic and bricks are static, so
// the solver never reports these pairs; paddle-side brick rules use this
// query instead.
func (pw *PhysicsWorld) PaddleOverlaps(paddle Entity) []Entity {
	rec, ok := pw.lookup(paddle)
	if !ok || len(rec.shapes) == 0 {
		return nil
	}
	bb := rec.shapes[0].BB()
	var out []Entity
	pw.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		e, ok := pw.shapeToEntity[shape]
		if !ok || e == paddle {
			return
		}
		if r, ok := pw.bodies[e]; ok && r.kind == bodyBrick {
			out = append(out, e)
		}
	}, nil)
	return out
}

// Position returns an entity's body position.
func (pw *PhysicsWorld) Position(e Entity) (cp.Vector, bool) {
	rec, ok := pw.lookup(e)
	if !ok || rec.body == nil {
		return cp.Vector{}, false
	}
	return rec.body.Position(), true
}

// Velocity returns an entity's body velocity.
func (pw *PhysicsWorld) Velocity(e Entity) (cp.Vector, bool) {
	rec, ok := pw.lookup(e)
	if !ok || rec.body == nil {
		return cp.Vector{}, false
	}
	return rec.body.Velocity(), true
}

// SetVelocity overwrites an entity's body velocity.
func (pw *PhysicsWorld) SetVelocity(e Entity, vx, vy float64) {
	if rec, ok := pw.lookup(e); ok && rec.body != nil {
		rec.body.SetVelocity(vx, vy)
	}
}

// SetPosition teleports an entity's body.
func (pw *PhysicsWorld) SetPosition(e Entity, x, y float64) {
	if rec, ok := pw.lookup(e); ok && rec.body != nil {
		rec.body.SetPosition(cp.Vector{X: x, Y: y})
	}
}

// Activate wakes an entity's body so the engine cannot leave it dormant
// after an unfreeze.
func (pw *PhysicsWorld) Activate(e Entity) {
	if rec, ok := pw.lookup(e); ok && rec.body != nil {
		rec.body.Activate()
	}
}

func (pw *PhysicsWorld) lookup(e Entity) (*bodyRec, bool) {
	if pw == nil {
		return nil, false
	}
	rec, ok := pw.bodies[e]
	return rec, ok
}

func (pw *PhysicsWorld) register(e Entity, rec *bodyRec) {
	pw.bodies[e] = rec
	for _, shape := range rec.shapes {
		pw.shapeToEntity[shape] = e
	}
}

func (pw *PhysicsWorld) buildArena() {
	w, h := levels.ArenaWidth, levels.ArenaHeight

	walls := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: h}},
		{a: cp.Vector{X: w, Y: 0}, b: cp.Vector{X: w, Y: h}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: w, Y: 0}},
	}
	for _, seg := range walls {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, wallRadius)
		shape.SetElasticity(1.0)
		shape.SetFriction(pw.cfg.Brick.Friction)
		shape.SetCollisionType(collisionTypeWall)
		pw.space.AddShape(shape)
	}

	// The bottom edge is open; the goal sensor sits just below it so a ball
	// has visibly left the arena when the loss registers.
	goal := cp.NewSegment(pw.space.StaticBody,
		cp.Vector{X: -wallRadius, Y: h + 2*wallRadius},
		cp.Vector{X: w + wallRadius, Y: h + 2*wallRadius},
		wallRadius)
	goal.SetSensor(true)
	goal.SetCollisionType(collisionTypeGoal)
	pw.space.AddShape(goal)
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	brickHandler := pw.space.NewCollisionHandler(collisionTypeBall, collisionTypeBrick)
	brickHandler.UserData = pw
	brickHandler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		ballShape, brickShape := arb.Shapes()
		ball, okA := world.shapeToEntity[ballShape]
		brick, okB := world.shapeToEntity[brickShape]
		if !okA || !okB {
			return true
		}
		world.contacts.BrickHits = append(world.contacts.BrickHits, BrickHit{Brick: brick, Ball: ball})
		return true
	}

	ballGoal := pw.space.NewCollisionHandler(collisionTypeBall, collisionTypeGoal)
	ballGoal.UserData = pw
	ballGoal.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return false
		}
		ballShape, _ := arb.Shapes()
		if ball, ok := world.shapeToEntity[ballShape]; ok {
			world.contacts.GoalBalls = append(world.contacts.GoalBalls, ball)
		}
		return false
	}

	hazardGoal := pw.space.NewCollisionHandler(collisionTypeHazard, collisionTypeGoal)
	hazardGoal.UserData = pw
	hazardGoal.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return false
		}
		hazardShape, _ := arb.Shapes()
		if hazard, ok := world.shapeToEntity[hazardShape]; ok {
			world.contacts.GoalHazards = append(world.contacts.GoalHazards, hazard)
		}
		return false
	}

	paddleHazard := pw.space.NewCollisionHandler(collisionTypePaddle, collisionTypeHazard)
	paddleHazard.UserData = pw
	paddleHazard.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return false
		}
		_, hazardShape := arb.Shapes()
		if hazard, ok := world.shapeToEntity[hazardShape]; ok {
			world.contacts.PaddleHazards = append(world.contacts.PaddleHazards, hazard)
		}
		return false
	}

	pw.handlersReady = true
}
