package action

import (
	"strings"

	"packy/internal/model"
	"packy/internal/order"
	"packy/internal/store"
)

func AddStage(s *store.Store, name string) (model.Stage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Stage{}, ErrEmptyName
	}
	st := s.State()
	if st.List == nil {
		return model.Stage{}, ErrNoList
	}
	stage := model.Stage{
		ID:    store.NewID("stage"),
		Name:  name,
		Order: len(st.List.Stages),
		Tasks: []model.Task{},
	}
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		st.List.Stages = append(st.List.Stages, stage)
		return st
	})
	return stage, nil
}

func RenameStage(s *store.Store, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	st := s.State()
	if st.List == nil {
		return ErrNoList
	}
	if _, ok := st.List.FindStage(id); !ok {
		return errNotFound("stage", id)
	}
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		if stage, ok := st.List.FindStage(id); ok {
			stage.Name = name
		}
		return st
	})
	return nil
}

// RemoveStage deletes a stage with its owned tasks and compacts the stage
// list's order scope.
func RemoveStage(s *store.Store, id string) error {
	st := s.State()
	if st.List == nil {
		return ErrNoList
	}
	if _, ok := st.List.FindStage(id); !ok {
		return errNotFound("stage", id)
	}
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		stages := st.List.Stages[:0]
		for _, sg := range st.List.Stages {
			if sg.ID != id {
				stages = append(stages, sg)
			}
		}
		st.List.Stages = stages

		var scope []order.Entry
		for _, sg := range st.List.Stages {
			scope = append(scope, order.Entry{ID: sg.ID, Order: sg.Order})
		}
		updates := order.Compact(scope)
		for i := range st.List.Stages {
			if o, ok := updates[st.List.Stages[i].ID]; ok {
				st.List.Stages[i].Order = o
			}
		}
		return st
	})
	return nil
}

func AddTask(s *store.Store, stageID, description string) (model.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return model.Task{}, ErrEmptyName
	}
	st := s.State()
	if st.List == nil {
		return model.Task{}, ErrNoList
	}
	stage, ok := st.List.FindStage(stageID)
	if !ok {
		return model.Task{}, errNotFound("stage", stageID)
	}
	task := model.Task{
		ID:          store.NewID("task"),
		Description: description,
		Order:       len(stage.Tasks),
	}
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		if stage, ok := st.List.FindStage(stageID); ok {
			stage.Tasks = append(stage.Tasks, task)
		}
		return st
	})
	return task, nil
}

func SetTaskCompleted(s *store.Store, taskID string, completed bool) error {
	st := s.State()
	if st.List == nil {
		return ErrNoList
	}
	if _, _, ok := st.List.FindTask(taskID); !ok {
		return errNotFound("task", taskID)
	}
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		if _, task, ok := st.List.FindTask(taskID); ok {
			task.Completed = completed
		}
		return st
	})
	return nil
}

func ToggleTaskCompleted(s *store.Store, taskID string) error {
	st := s.State()
	if st.List == nil {
		return ErrNoList
	}
	_, task, ok := st.List.FindTask(taskID)
	if !ok {
		return errNotFound("task", taskID)
	}
	return SetTaskCompleted(s, taskID, !task.Completed)
}

// RemoveTask deletes a task and compacts its stage's order scope.
func RemoveTask(s *store.Store, taskID string) error {
	st := s.State()
	if st.List == nil {
		return ErrNoList
	}
	if _, _, ok := st.List.FindTask(taskID); !ok {
		return errNotFound("task", taskID)
	}
	s.SetState(func(st store.State) store.State {
		if st.List == nil {
			return st
		}
		stage, _, ok := st.List.FindTask(taskID)
		if !ok {
			return st
		}
		tasks := stage.Tasks[:0]
		for _, tk := range stage.Tasks {
			if tk.ID != taskID {
				tasks = append(tasks, tk)
			}
		}
		stage.Tasks = tasks

		var scope []order.Entry
		for _, tk := range stage.Tasks {
			scope = append(scope, order.Entry{ID: tk.ID, Order: tk.Order})
		}
		updates := order.Compact(scope)
		for i := range stage.Tasks {
			if o, ok := updates[stage.Tasks[i].ID]; ok {
				stage.Tasks[i].Order = o
			}
		}
		return st
	})
	return nil
}
