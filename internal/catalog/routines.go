package catalog

import "github.com/meltforce/gymtracker/internal/models"

var defaultRoutines = []models.Routine{
	{
		ID:       1,
		Title:    "Treino 1: Empurrar",
		Subtitle: "Peito e Tríceps",
		Color:    "bg-blue-600",
		Exercises: []models.Exercise{
			{ID: "1-1", Name: "Supino Reto (Barra ou Halter)", Sets: "4", Reps: "8-12"},
			{ID: "1-2", Name: "Supino Inclinado (Halter)", Sets: "3", Reps: "10-12"},
			{ID: "1-3", Name: "Crucifixo (Máquina ou Halter)", Sets: "3", Reps: "12-15"},
			{ID: "1-4", Name: "Tríceps Pulley (Corda)", Sets: "4", Reps: "12-15"},
			{ID: "1-5", Name: "Tríceps Testa", Sets: "3", Reps: "10-12"},
			{ID: "1-6", Name: "Mergulho no Banco ou Paralelas", Sets: "3", Reps: "Até a falha"},
		},
	},
	{
		ID:       2,
		Title:    "Treino 2: Puxar",
		Subtitle: "Costas e Bíceps",
		Color:    "bg-emerald-600",
		Exercises: []models.Exercise{
			{ID: "2-1", Name: "Puxada Alta (Frente)", Sets: "4", Reps: "10-12"},
			{ID: "2-2", Name: "Remada Baixa (Triângulo)", Sets: "4", Reps: "10-12"},
			{ID: "2-3", Name: "Remada Curvada (Barra ou Halter)", Sets: "3", Reps: "10-12"},
			{ID: "2-4", Name: "Rosca Direta (Barra W)", Sets: "4", Reps: "10-12"},
			{ID: "2-5", Name: "Rosca Martelo (Halteres)", Sets: "3", Reps: "12-15"},
			{ID: "2-6", Name: "Rosca Concentrada", Sets: "3", Reps: "12-15"},
		},
	},
	{
		ID:       3,
		Title:    "Treino 3: Pernas A",
		Subtitle: "Foco em Quadríceps",
		Color:    "bg-red-600",
		Exercises: []models.Exercise{
			{ID: "3-1", Name: "Agachamento Livre ou Smith", Sets: "4", Reps: "8-10"},
			{ID: "3-2", Name: "Leg Press 45º", Sets: "4", Reps: "10-12"},
			{ID: "3-3", Name: "Cadeira Extensora", Sets: "4", Reps: "12-15"},
			{ID: "3-4", Name: "Afundo (Halteres)", Sets: "3", Reps: "10-12 (cada perna)"},
			{ID: "3-5", Name: "Panturrilha no Leg Press", Sets: "4", Reps: "15-20"},
			{ID: "3-6", Name: "Panturrilha Sentado", Sets: "3", Reps: "15-20"},
		},
	},
	{
		ID:       4,
		Title:    "Treino 4: Ombros",
		Subtitle: "Ombros e Abdômen",
		Color:    "bg-orange-600",
		Exercises: []models.Exercise{
			{ID: "4-1", Name: "Desenvolvimento (Halteres ou Máquina)", Sets: "4", Reps: "10-12"},
			{ID: "4-2", Name: "Elevação Lateral", Sets: "4", Reps: "12-15"},
			{ID: "4-3", Name: "Elevação Frontal", Sets: "3", Reps: "12-15"},
			{ID: "4-4", Name: "Crucifixo Inverso (Posterior de Ombro)", Sets: "3", Reps: "12-15"},
			{ID: "4-5", Name: "Abdominal Supra (Colchonete)", Sets: "4", Reps: "15-20"},
			{ID: "4-6", Name: "Prancha Isométrica", Sets: "3", Reps: "30-60 seg"},
		},
	},
	{
		ID:       5,
		Title:    "Treino 5: Pernas B",
		Subtitle: "Posterior e Glúteo",
		Color:    "bg-pink-600",
		Exercises: []models.Exercise{
			{ID: "5-1", Name: "Levantamento Terra (ou Romeno)", Sets: "4", Reps: "8-10"},
			{ID: "5-2", Name: "Mesa Flexora", Sets: "4", Reps: "12-15"},
			{ID: "5-3", Name: "Elevação Pélvica", Sets: "4", Reps: "10-12"},
			{ID: "5-4", Name: "Cadeira Abdutora", Sets: "3", Reps: "15-20"},
			{ID: "5-5", Name: "Stiff com Halteres", Sets: "3", Reps: "10-12"},
			{ID: "5-6", Name: "Panturrilha em Pé", Sets: "4", Reps: "15-20"},
		},
	},
	{
		ID:       6,
		Title:    "Treino 6: Full Body",
		Subtitle: "Corpo Inteiro",
		Color:    "bg-purple-600",
		Exercises: []models.Exercise{
			{ID: "6-1", Name: "Agachamento (Peso do corpo ou Halter)", Sets: "3", Reps: "12"},
			{ID: "6-2", Name: "Flexão de Braço", Sets: "3", Reps: "Até a falha"},
			{ID: "6-3", Name: "Remada Curvada", Sets: "3", Reps: "12"},
			{ID: "6-4", Name: "Desenvolvimento Militar", Sets: "3", Reps: "12"},
			{ID: "6-5", Name: "Passada (Avanço)", Sets: "3", Reps: "12"},
			{ID: "6-6", Name: "Burpees (Opcional)", Sets: "3", Reps: "10"},
		},
	},
	{
		ID:       7,
		Title:    "Treino 7: Cardio + Core",
		Subtitle: "Resistência",
		Color:    "bg-cyan-600",
		Exercises: []models.Exercise{
			{ID: "7-1", Name: "Corrida/Caminhada (Esteira ou Rua)", Sets: "1", Reps: "30-40 min"},
			{ID: "7-2", Name: "Abdominal Infra (Elevação de pernas)", Sets: "3", Reps: "15"},
			{ID: "7-3", Name: "Abdominal Bicicleta", Sets: "3", Reps: "20 (total)"},
			{ID: "7-4", Name: "Prancha Lateral", Sets: "3", Reps: "30s cada lado"},
			{ID: "7-5", Name: "Mountain Climbers", Sets: "3", Reps: "30 seg"},
		},
	},
	{
		ID:       8,
		Title:    "Treino 8: Funcional",
		Subtitle: "Mobilidade e Recuperação",
		Color:    "bg-teal-600",
		Exercises: []models.Exercise{
			{ID: "8-1", Name: "Alongamento Dinâmico de Ombros", Sets: "2", Reps: "30 seg"},
			{ID: "8-2", Name: "Agachamento Profundo (Segurar)", Sets: "3", Reps: "30 seg"},
			{ID: "8-3", Name: "Gato-Vaca (Mobilidade Coluna)", Sets: "3", Reps: "10 reps"},
			{ID: "8-4", Name: "Perdigueiro", Sets: "3", Reps: "12 reps"},
			{ID: "8-5", Name: "Polichinelos", Sets: "3", Reps: "50 reps"},
			{ID: "8-6", Name: "Caminhada Leve", Sets: "1", Reps: "20 min"},
		},
	},
}
